package core

import (
	"fmt"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	AttributeKeyChainID        = attribute.Key("chain_id")
	AttributeKeyRole           = attribute.Key("role")
	AttributeKeyDirection      = attribute.Key("direction")
	AttributeKeyTrackingID     = attribute.Key("tracking_id")
	AttributeKeyRevisionNumber = attribute.Key("revision_number")
	AttributeKeyRevisionHeight = attribute.Key("revision_height")
	AttributeKeyStartHeight    = attribute.Key("start_height")
	AttributeKeyTargetHeight   = attribute.Key("target_height")
	AttributeKeyRetryCount     = attribute.Key("retry_count")
	AttributeKeyPackage        = attribute.Key("package")
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

// HeightAttributes converts a height into attributes grouped under key.
// Both components are strings because the attribute package does not support uint64.
func HeightAttributes(key string, height clienttypes.Height) []attribute.KeyValue {
	return AttributeGroup(key,
		AttributeKeyRevisionNumber.String(fmt.Sprint(height.GetRevisionNumber())),
		AttributeKeyRevisionHeight.String(fmt.Sprint(height.GetRevisionHeight())),
	)
}

func WithChainAttributes(chain ChainHandle) trace.SpanStartOption {
	return trace.WithAttributes(
		AttributeKeyChainID.String(chain.ChainID()),
		AttributeKeyRole.String(string(chain.Config().Role)),
	)
}

func WithChainPairAttributes(src, dst ChainHandle) trace.SpanStartOption {
	attrs := AttributeGroup("src",
		AttributeKeyChainID.String(src.ChainID()),
		AttributeKeyRole.String(string(src.Config().Role)),
	)
	attrs = append(attrs, AttributeGroup("dst",
		AttributeKeyChainID.String(dst.ChainID()),
		AttributeKeyRole.String(string(dst.Config().Role)),
	)...)
	return trace.WithAttributes(attrs...)
}
