// Package stage names the four toolchain phases a driver run moves through and
// decides, from the user's mode flags, which of them actually execute.
//
// The phase order is fixed: preprocessor, compiler, assembler, linker. Every
// per-stage collection in the driver is indexed in this order.
package stage
