// Package hclconfig loads the driver's configuration registry from HCL files.
//
// A configuration directory holds any number of `.hcl` files. Each may declare
// `backend` blocks, labelled with a (possibly wildcarded) target-arch-vendor
// pattern, and `language` blocks:
//
//	backend "bmv2-*-p4org" {
//	  preprocessor = "cc"
//	  compiler     = "p4c-bm2-ss"
//	  assembler    = "true"
//	  linker       = "true"
//	  options {
//	    preprocessor = ["-E -x c", source_file]
//	    compiler     = ["-o ${output_dir}/${source_basename}.json"]
//	  }
//	}
//
//	language "p4-16" {
//	  include_path = env("P4C_16_INCLUDE_PATH")
//	}
//
// Expressions may reference output_dir, source_file and source_basename, and
// call env(name) to read the process environment.
package hclconfig
