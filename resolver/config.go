package resolver

import (
	"fmt"
	"time"

	"github.com/polypuls3/polypulse/types"
)

// DefaultTimeout bounds the index read in auto mode before falling back to the contract
const DefaultTimeout = 5 * time.Second

// Config selects the data source and tunes the auto mode
type Config struct {
	Source       types.DataSource `mapstructure:"source"`
	Timeout      time.Duration    `mapstructure:"timeout"`
	AutoFallback bool             `mapstructure:"auto_fallback"`
}

// DefaultConfig returns the auto mode with a 5s index timeout and contract fallback
func DefaultConfig() Config {
	return Config{
		Source:       types.SourceAuto,
		Timeout:      DefaultTimeout,
		AutoFallback: true,
	}
}

// ValidateBasic returns an error if the config is not usable
func (c Config) ValidateBasic() error {
	if err := c.Source.ValidateBasic(); err != nil {
		return err
	}

	if c.Source == types.SourceAuto && c.Timeout <= 0 {
		return fmt.Errorf("auto mode requires a positive timeout, got %s", c.Timeout)
	}

	return nil
}
