package core

import (
	"fmt"
	"strings"
)

// ClientType identifies the consensus algorithm a light client verifies.
type ClientType uint64

const (
	ClientTypeTendermint ClientType = 1
	ClientTypeEth        ClientType = 2
	ClientTypeCkb        ClientType = 3
	ClientTypeAxon       ClientType = 4
	ClientTypeCkb4Ibc    ClientType = 5

	// ClientTypeMock is only meant for tests and in-memory chains.
	ClientTypeMock ClientType = 9999
)

type clientTypeEntry struct {
	clientType ClientType
	tag        string
}

// clientTypeTable is the single source of truth for every ClientType. Its
// order is the declaration order used by InferClientType.
var clientTypeTable = []clientTypeEntry{
	{ClientTypeTendermint, "07-tendermint"},
	{ClientTypeEth, "07-ethereum"},
	{ClientTypeCkb, "07-ckb4eth"},
	{ClientTypeAxon, "07-axon"},
	{ClientTypeCkb4Ibc, "07-ckb4ibc"},
	{ClientTypeMock, "9999-mock"},
}

// AllClientTypes returns every ClientType in declaration order.
func AllClientTypes() []ClientType {
	types := make([]ClientType, 0, len(clientTypeTable))
	for _, e := range clientTypeTable {
		types = append(types, e.clientType)
	}
	return types
}

// Tag returns the canonical identifier of the client type, e.g. "07-tendermint".
// It returns an empty string for a value outside the known set.
func (ct ClientType) Tag() string {
	for _, e := range clientTypeTable {
		if e.clientType == ct {
			return e.tag
		}
	}
	return ""
}

// Code returns the numeric discriminant of the client type.
func (ct ClientType) Code() uint64 {
	return uint64(ct)
}

func (ct ClientType) String() string {
	return fmt.Sprintf("ClientType(%s)", ct.Tag())
}

func (ct ClientType) MarshalText() ([]byte, error) {
	tag := ct.Tag()
	if tag == "" {
		return nil, &UnknownClientTypeError{Value: fmt.Sprint(uint64(ct))}
	}
	return []byte(tag), nil
}

func (ct *ClientType) UnmarshalText(text []byte) error {
	parsed, err := ParseClientType(string(text))
	if err != nil {
		return err
	}
	*ct = parsed
	return nil
}

// ParseClientType returns the client type whose canonical tag equals s.
// Prefix matches are rejected; use InferClientType for client identifiers.
func ParseClientType(s string) (ClientType, error) {
	for _, e := range clientTypeTable {
		if e.tag == s {
			return e.clientType, nil
		}
	}
	return 0, &UnknownClientTypeError{Value: s}
}

// ClientTypeFromCode returns the client type whose numeric discriminant equals code.
func ClientTypeFromCode(code uint64) (ClientType, error) {
	for _, e := range clientTypeTable {
		if e.clientType.Code() == code {
			return e.clientType, nil
		}
	}
	return 0, &UnknownClientTypeError{Value: fmt.Sprint(code)}
}

// InferredClientType is a best-effort guess derived from a client identifier.
// It is not validated input; convert it explicitly with ClientType() when a
// guess is acceptable.
type InferredClientType struct {
	clientType ClientType
	matched    bool
}

// ClientType returns the guessed client type.
func (i InferredClientType) ClientType() ClientType {
	return i.clientType
}

// Matched reports whether any tag prefixed the identifier. When false the
// guess is ClientTypeMock.
func (i InferredClientType) Matched() bool {
	return i.matched
}

func (i InferredClientType) String() string {
	return i.clientType.String()
}

// InferClientType guesses the client type of a client identifier such as
// "07-tendermint-0". Every entry of the table is checked and the last one whose
// tag prefixes clientID wins. It never fails: ClientTypeMock is returned when
// nothing matches.
func InferClientType(clientID string) InferredClientType {
	return inferClientType(clientTypeTable, clientID)
}

func inferClientType(table []clientTypeEntry, clientID string) InferredClientType {
	inferred := InferredClientType{clientType: ClientTypeMock}
	for _, e := range table {
		if strings.HasPrefix(clientID, e.tag) {
			inferred = InferredClientType{clientType: e.clientType, matched: true}
		}
	}
	return inferred
}
