// Package codec converts pixel buffers to and from encoded image bytes.
//
// It is the pipeline's external collaborator for file formats: the engine
// itself never sees bytes, only buffers. Decoding accepts any format with a
// registered decoder (PNG, JPEG, GIF, BMP, TIFF); encoding goes through the
// imaging library's encoders. EMF, WMF, ICO and EXIF are recognized by name
// only; a format without a native Go encoder falls back to PNG bytes on
// encode.
//
// The package also owns the batch-save filename template: a path containing
// exactly one %s placeholder that each buffer name is substituted into, with
// an optional automatic-extension rule that swaps the template's extension
// for the chosen format's canonical one.
package codec
