// Package typedrepo wires the configuration and the shared dependencies
// of the typedrepo demos: the logger, the validator, and the store.
package typedrepo

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/go-arrower/typedrepo/alog"
	"github.com/go-arrower/typedrepo/repository"
	"github.com/go-arrower/typedrepo/secret"
)

// Config is a structure used for the demo configuration.
// It is intended to be mapped by viper.
type Config struct {
	Environment Environment `mapstructure:"environment"`

	// DataDir is the directory the stores keep their files in.
	DataDir     string            `mapstructure:"data_dir"`
	StoreFormat repository.Format `mapstructure:"store_format"`
	LogLevel    string            `mapstructure:"log_level"`

	Grading Grading `mapstructure:"grading"`
	Finance Finance `mapstructure:"finance"`
}

const (
	LocalEnv       Environment = "local"
	TestEnv        Environment = "test"
	DevelopmentEnv Environment = "dev"
	ProductionEnv  Environment = "prod"
)

// Environments is the list of all supported environments.
func Environments() []Environment {
	return []Environment{LocalEnv, TestEnv, DevelopmentEnv, ProductionEnv}
}

type Environment string

type (
	Grading struct {
		// Input is the file of "id, name, score" lines to grade.
		// If empty, a built-in list of students is used.
		Input  string `mapstructure:"input"  json:"input"`
		Report string `mapstructure:"report" json:"report"`
	}

	Finance struct {
		Currency string `mapstructure:"currency" json:"currency"`
		// MobileMoneyPIN authorises mobile money payments.
		MobileMoneyPIN secret.Secret `mapstructure:"mobile_money_pin" json:"-"`
	}
)

// EnvPrefix is the prefix of all environment variables read by DefaultViper,
// e.g. TYPEDREPO_STORE_FORMAT or TYPEDREPO_GRADING_INPUT.
const EnvPrefix = "TYPEDREPO"

// DefaultViper returns a new viper instance with all default values
// from Config set. Every value can be overwritten by an environment variable.
func DefaultViper() *Viper {
	vip := viper.New()

	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	vip.SetDefault("environment", "local")

	vip.SetDefault("data_dir", "data")
	vip.SetDefault("store_format", string(repository.FormatJSON))
	vip.SetDefault("log_level", "info")

	vip.SetDefault("grading.input", "")
	vip.SetDefault("grading.report", "grade_report.txt")

	vip.SetDefault("finance.currency", "USD")
	vip.SetDefault("finance.mobile_money_pin", "0000")

	return &Viper{Viper: vip}
}

var errConfigLoadFailed = errors.New("loading configuration failed")

// Viper is a wrapper around viper.Viper for configuration loading.
// The only purpose is to overwrite the Unmarshal method,
// so that the custom types of Config are checked and decoded
// without the developer having to think about it when using DefaultViper.
type Viper struct {
	*viper.Viper
}

func (vip *Viper) Unmarshal(rawVal any, opts ...viper.DecoderConfigOption) error {
	opts = append([]viper.DecoderConfigOption{
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			allowListHookFunc(Environments()),
			allowListHookFunc(repository.Formats()),
			mapstructure.TextUnmarshallerHookFunc(),
		)),
	}, opts...)

	err := vip.Viper.Unmarshal(rawVal, opts...)
	if err != nil {
		return fmt.Errorf("%w: could not decode configuration into struct: %v", errConfigLoadFailed, err)
	}

	if config, ok := rawVal.(*Config); ok {
		if _, err := alog.ParseLevel(config.LogLevel); err != nil {
			return fmt.Errorf("%w: invalid log_level: %v", errConfigLoadFailed, err)
		}
	}

	return nil
}

// allowListHookFunc rejects all values of T that are not in allowed.
func allowListHookFunc[T ~string](allowed []T) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(T("")) || f.Kind() != reflect.String {
			return data, nil
		}

		if slices.Contains(allowed, T(reflect.ValueOf(data).String())) {
			return data, nil
		}

		values := make([]string, 0, len(allowed))
		for _, v := range allowed {
			values = append(values, string(v))
		}

		return data, fmt.Errorf("value %v is not allowed, use one of: %s", data, strings.Join(values, ", ")) //nolint:err113,lll // accept dynamic error
	}
}
