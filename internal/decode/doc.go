// Package decode holds the persisted decoder configuration. It is a tagged
// union of beam search and greedy decoding, stored as sn-config-decode.json
// with a "type" discriminant, for example {"type": "beam", "num_beams": 4}.
package decode
