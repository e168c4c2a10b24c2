// Package dckv decodes DICOM files into DICOM Contextualized Key Values (DCKV): a flat,
// insertion-ordered list of key-value pairs in which the key of every data element encodes its
// full path through nested sequences.
//
// Deserialize walks a file encoded in Explicit VR Little Endian and calls a Deserializer once per
// decoded unit: every data element, the container of every sequence, the start and end of every
// sequence item and the end of every sequence. KVMap is a Deserializer collecting the units into
// a map that can be written to and read from .ekv files; Dumper writes a line of text per unit.
//
// A Key is made of one 8 byte block per nesting level, up to MaxDepth levels. Each block holds
// the tag (element + (group << 16)), the VR and a slot numbering sequence items. Markers for
// items and sequences use reserved blocks, so every unit of a data set has a distinct key.
//
// Tags are not interpreted against the data dictionary and values are not transcoded; Value
// renders text as the raw bytes of the stream.
package dckv
