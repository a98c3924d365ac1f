package semconv

import (
	"go.opentelemetry.io/otel/attribute"
)

const (
	// ChainIDKey represents the chain ID.
	//
	// Type: string
	// RequirementLevel: Recommended
	// Stability: Development
	// Examples: "eth0", "ckb0"
	ChainIDKey = attribute.Key("chain_id")

	// ChainRoleKey represents the chain family.
	//
	// Type: string
	// RequirementLevel: Recommended
	// Stability: Development
	// Examples: "eth", "ckb"
	ChainRoleKey = attribute.Key("chain_role")

	// HeightRevisionNumberKey represents the revision number of the height.
	//
	// Type: string
	// RequirementLevel: Recommended
	// Stability: Development
	// Examples: "0"
	HeightRevisionNumberKey = attribute.Key("height.revision_number")

	// HeightRevisionHeightKey represents the revision height of the height.
	//
	// Type: string
	// RequirementLevel: Recommended
	// Stability: Development
	// Examples: "123"
	HeightRevisionHeightKey = attribute.Key("height.revision_height")

	// PageOffsetKey represents the first height of a client state page.
	//
	// Type: int
	// RequirementLevel: Recommended
	// Stability: Development
	// Examples: 50
	PageOffsetKey = attribute.Key("page.offset")

	// PageLimitKey represents the maximum size of a client state page.
	//
	// Type: int
	// RequirementLevel: Recommended
	// Stability: Development
	// Examples: 32
	PageLimitKey = attribute.Key("page.limit")

	// TrackingIDKey represents the tracking id of a submitted message unit.
	//
	// Type: string
	// RequirementLevel: Recommended
	// Stability: Development
	// Examples: "eth-update-client"
	TrackingIDKey = attribute.Key("tracking_id")

	// MessageCountKey represents the number of messages in a submitted unit.
	//
	// Type: int
	// RequirementLevel: Recommended
	// Stability: Development
	// Examples: 32
	MessageCountKey = attribute.Key("message_count")
)

// AttributeGroup prefixes the given key to all attributes.
//
// For example, if the key is "foo" and the key of an attribute is "bar", the new key will be "foo.bar".
func AttributeGroup(key string, attributes ...attribute.KeyValue) []attribute.KeyValue {
	newAttrs := make([]attribute.KeyValue, 0, len(attributes))
	for _, attr := range attributes {
		newAttrs = append(newAttrs, attribute.KeyValue{
			Key:   attribute.Key(key + "." + string(attr.Key)),
			Value: attr.Value,
		})

	}
	return newAttrs
}
