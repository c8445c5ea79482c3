// This package implements the command line tool that uses the API.
// It provides an easy and reliable interface to quickly turn an image on the filesystem, or behind a URL, into
// gradient ascii art in the terminal.
//
// By default, the converter is compatible with .png, .jpg, .jpeg, .gif, .bmp, .tiff and .webp file formats
// (See github.com/nebbyJammin/gradascii/asciiart).
package main
