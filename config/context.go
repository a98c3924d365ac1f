package config

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
)

type Context struct {
	Modules []ModuleI
	Codec   codec.ProtoCodecMarshaler
	Config  *Config
}

// Module returns the registered module with the given name.
func (ctx *Context) Module(name string) (ModuleI, error) {
	for _, m := range ctx.Modules {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("module %q is not registered", name)
}
