// The asciiart package implements the logic for turning an image into gradient ascii art.
// Every pixel is reduced to one scalar channel (see ColorMode), weighted by its alpha and mapped onto a character of a
// Gradient. By default, the package supports .png, .jpg, .jpeg, .gif, .bmp, .tiff and .webp. See ConvertBytes() and
// ConvertReader(). To support other image formats, either use Convert() / Render() instead or import your custom
// decoders like so:
/*
import (
	... <other imports>

	_ "mycustomdecoder/mycustomformat" // Here is your custom file format

	...
)
*/
// Start by calling New() or NewDefault(). Pass the options into the constructors (see options.go).
// While all fields are public, treat the AsciiConverter struct as immutable (and thread unsafe).
package asciiart
