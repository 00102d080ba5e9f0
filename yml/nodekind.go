package yml

import "gopkg.in/yaml.v3"

// NodeKindToString returns a human-readable string representation of a yaml.Kind
// for use in error messages. The zero Kind is reported as "invalid".
func NodeKindToString(kind yaml.Kind) string {
	switch kind {
	case 0:
		return "invalid"
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
