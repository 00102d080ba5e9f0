package value

import "github.com/speakeasy-api/yamlvalue/errors"

const (
	// ErrInvalidNode is returned for nil nodes, nodes of unknown kind and malformed mappings or documents.
	ErrInvalidNode = errors.Error("invalid yaml node")
	// ErrUnsupportedAlias is returned when a node tree contains an alias.
	ErrUnsupportedAlias = errors.Error("yaml aliases are not supported")
	// ErrMalformedFloat is returned when a !!float scalar does not hold a float.
	ErrMalformedFloat = errors.Error("malformed float")
	// ErrMalformedScalar is returned when a !!bool or !!int scalar does not hold its tagged type.
	ErrMalformedScalar = errors.Error("malformed scalar")
	ErrSerialize       = errors.Error("failed to serialize value")
	// ErrTypeMismatch is returned by FromValue when a value does not fit the target type.
	ErrTypeMismatch = errors.Error("value does not match target type")
	// ErrUnsupportedFloat is returned when NaN or an infinity is written as JSON.
	ErrUnsupportedFloat = errors.Error("float has no JSON representation")
	// ErrDuplicateKey is returned when two mapping keys are written as the same JSON object key.
	ErrDuplicateKey = errors.Error("duplicate JSON object key")
	// ErrUnexpectedToken is returned when an event source reports tokens out of order.
	ErrUnexpectedToken = errors.Error("unexpected token")
	// ErrUnsupportedType is returned by Of for Go types with no value representation.
	ErrUnsupportedType = errors.Error("unsupported type")
)
