package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hyperledger-labs/yui-header-relayer/core"
	"github.com/hyperledger-labs/yui-header-relayer/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	DefaultHomeDir    = ".yui-header-relayer"
	DefaultConfigPath = "config/config.yaml"
)

type Config struct {
	Global GlobalConfig   `yaml:"global" json:"global" mapstructure:"global"`
	Chains []*ChainConfig `yaml:"chains" json:"chains" mapstructure:"chains"`
	Relay  RelayConfig    `yaml:"relay" json:"relay" mapstructure:"relay"`

	// ConfigPath is the file the config was loaded from
	ConfigPath string `yaml:"-" json:"-" mapstructure:"-"`
}

type GlobalConfig struct {
	Timeout         string `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
	LogLevel        string `yaml:"log-level" json:"log-level" mapstructure:"log-level"`
	LogFormat       string `yaml:"log-format" json:"log-format" mapstructure:"log-format"`
	LogOutput       string `yaml:"log-output" json:"log-output" mapstructure:"log-output"`
	EnableTelemetry bool   `yaml:"enable-telemetry" json:"enable-telemetry" mapstructure:"enable-telemetry"`
}

// ChainConfig describes one chain. Params are interpreted by the module named by Module.
type ChainConfig struct {
	ChainID    string            `yaml:"chain-id" json:"chain-id" mapstructure:"chain-id"`
	Role       core.ChainRole    `yaml:"role" json:"role" mapstructure:"role"`
	ClientID   string            `yaml:"client-id,omitempty" json:"client-id,omitempty" mapstructure:"client-id"`
	ClientType string            `yaml:"client-type,omitempty" json:"client-type,omitempty" mapstructure:"client-type"`
	Debug      bool              `yaml:"debug" json:"debug" mapstructure:"debug"`
	Module     string            `yaml:"module" json:"module" mapstructure:"module"`
	Params     map[string]string `yaml:"params,omitempty" json:"params,omitempty" mapstructure:"params"`
}

// RelayConfig names the source and destination chains of the relay service.
type RelayConfig struct {
	SrcChainID string `yaml:"src-chain-id" json:"src-chain-id" mapstructure:"src-chain-id"`
	DstChainID string `yaml:"dst-chain-id" json:"dst-chain-id" mapstructure:"dst-chain-id"`
}

// DefaultConfig returns a config relaying between two in-memory mock chains.
func DefaultConfig(configPath string) Config {
	return Config{
		Global: newDefaultGlobalConfig(),
		Chains: []*ChainConfig{
			{
				ChainID:  "eth0",
				Role:     core.ChainRoleEth,
				ClientID: core.ClientTypeEth.Tag() + "-0",
				Module:   "mock",
				Params:   map[string]string{"tip": "1", "block-interval": "1s"},
			},
			{
				ChainID:    "ckb0",
				Role:       core.ChainRoleCkb,
				ClientType: core.ClientTypeEth.Tag(),
				Module:     "mock",
				Params:     map[string]string{"tip": "0"},
			},
		},
		Relay: RelayConfig{
			SrcChainID: "eth0",
			DstChainID: "ckb0",
		},
		ConfigPath: configPath,
	}
}

// newDefaultGlobalConfig returns a global config with defaults set
func newDefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Timeout:   "10s",
		LogLevel:  "info",
		LogFormat: "text",
		LogOutput: "stderr",
	}
}

// Load reads the YAML file at configPath on top of the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	c := Config{Global: newDefaultGlobalConfig()}
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", configPath, err)
	}
	c.ConfigPath = configPath
	return &c, nil
}

// Save writes the config to its ConfigPath, creating the directory if needed.
func (c *Config) Save() error {
	bz, err := c.ToYAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.ConfigPath), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(c.ConfigPath, bz, 0600)
}

// ToYAML encodes the config in the on-disk format.
func (c Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c GlobalConfig) GetTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Timeout)
}

// Validate reports every problem found in the config.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Global.GetTimeout(); err != nil {
		errs = append(errs, fmt.Errorf("invalid global timeout: %w", err))
	}

	seen := make(map[string]bool)
	for i, chain := range c.Chains {
		if chain == nil {
			errs = append(errs, fmt.Errorf("chains[%d] is empty", i))
			continue
		}
		if chain.ChainID == "" {
			errs = append(errs, fmt.Errorf("chains[%d]: chain-id must be set", i))
		} else if seen[chain.ChainID] {
			errs = append(errs, fmt.Errorf("chains[%d]: chain-id %q is duplicated", i, chain.ChainID))
		}
		seen[chain.ChainID] = true
		if err := chain.Role.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("chains[%d]: %w", i, err))
		}
		if chain.Module == "" {
			errs = append(errs, fmt.Errorf("chains[%d]: module must be set", i))
		}
		if chain.ClientType != "" {
			if _, err := core.ParseClientType(chain.ClientType); err != nil {
				errs = append(errs, fmt.Errorf("chains[%d]: %w", i, err))
			}
		}
	}

	switch {
	case c.Relay.SrcChainID == "" || c.Relay.DstChainID == "":
		errs = append(errs, errors.New("relay: src-chain-id and dst-chain-id must be set"))
	case c.Relay.SrcChainID == c.Relay.DstChainID:
		errs = append(errs, fmt.Errorf("relay: src and dst are the same chain %q", c.Relay.SrcChainID))
	default:
		for _, id := range []string{c.Relay.SrcChainID, c.Relay.DstChainID} {
			if !seen[id] {
				errs = append(errs, fmt.Errorf("relay: chain %q is not configured", id))
			}
		}
	}
	return errors.Join(errs...)
}

// GetChainConfig returns the config of the chain with the given id.
func (c *Config) GetChainConfig(chainID string) (*ChainConfig, error) {
	for _, chain := range c.Chains {
		if chain != nil && chain.ChainID == chainID {
			return chain, nil
		}
	}
	return nil, fmt.Errorf("chain with ID %s is not configured", chainID)
}

// ResolveClientType returns the configured client type. When none is set it is
// inferred from the client id and guessed is true.
func (cc ChainConfig) ResolveClientType() (clientType core.ClientType, guessed bool, err error) {
	if cc.ClientType != "" {
		clientType, err = core.ParseClientType(cc.ClientType)
		return clientType, false, err
	}
	inferred := core.InferClientType(cc.ClientID)
	log.GetLogger().
		WithClient(cc.ChainID, cc.ClientID, inferred.ClientType().Tag()).
		WithModule("config").
		Info("client type is guessed from client id", "matched", inferred.Matched())
	return inferred.ClientType(), true, nil
}
