// Package cfgloader provides a simple way to load and validate configuration at the start of an application.
package cfgloader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"
)

const (
	// CodeInvalidEnvironment is returned when ENVIRONMENT is unset or not one of the known environments.
	CodeInvalidEnvironment = "INVALID_ENVIRONMENT"
	// CodeConfigNotFound is returned when the yaml file of the environment does not exist.
	CodeConfigNotFound = "CONFIG_NOT_FOUND"
	// CodeInvalidConfig is returned when the config can not be read, decoded or validated.
	CodeInvalidConfig = "INVALID_CONFIG"
)

// Load loads and validates configuration from a YAML file based on the ENVIRONMENT variable.
// The files must be named in the format ${ENVIRONMENT}.yaml and located in the config directory
// (./config unless WithDir is given).
//
// The configuration struct should use `yaml` struct tags to map fields to the YAML file structure.
// ${VAR} references in the file are expanded from the process environment, which is first
// populated from a .env file when one exists.
//
// Default values for configuration fields can be set using the `default` struct tag. These values are applied
// before validation if the corresponding fields are not explicitly defined in the YAML file.
//
// Validations are done using the go-playground/validator package.
// See https://pkg.go.dev/github.com/go-playground/validator/v10 for more information.
//
// Example:
//
//	type Config struct {
//	    Host     string `yaml:"host" validate:"required"`  // required
//	    Port     int    `yaml:"port" default:"8080"`       // defaults to 8080
//	    Password string `yaml:"password" mask:"true"`      // printed as ****
//	}
func Load[T any](opts ...Option) (T, error) {
	var config T

	if reflect.TypeFor[T]().Kind() == reflect.Pointer {
		return config, errx.New("[cfgloader]: type parameter must not be a pointer",
			errx.WithCode(CodeInvalidConfig), errx.WithType(errx.T_Internal))
	}

	o := newOptions(opts...)

	_ = godotenv.Load(o.envFiles...)

	env, err := defineEnvironment(o.environment)
	if err != nil {
		return config, err
	}

	path := filepath.Join(o.dir, env+".yaml")

	data, err := readConfigFile(path)
	if err != nil {
		return config, err
	}

	if err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &config); err != nil {
		return config, invalidConfig(env, "failed to unmarshal config file", err)
	}

	if err = defaults.Set(&config); err != nil {
		return config, invalidConfig(env, "failed to set default values", err)
	}

	if err = validateConfig(&config, env); err != nil {
		return config, err
	}

	if !o.silent {
		printConfig(slog.Default(), config)
	}

	return config, nil
}

// MustLoad is like Load but terminates the process when the configuration can not be loaded.
func MustLoad[T any](opts ...Option) T {
	config, err := Load[T](opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	return config
}

func defineEnvironment(env string) (string, error) {
	if env == "" {
		env = os.Getenv("ENVIRONMENT")
	}
	if !slices.Contains([]string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}, env) {
		return "", errx.New(
			"[cfgloader]: ENVIRONMENT env variable is not set or invalid. Choices are: production, staging, dev, local, test",
			errx.WithCode(CodeInvalidEnvironment),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"environment": env}),
		)
	}
	return env, nil
}

func readConfigFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errx.New(
			fmt.Sprintf(
				"[cfgloader]: config file not found in the path %s - Make sure that the yaml file exists for each environment",
				path,
			),
			errx.WithCode(CodeConfigNotFound),
			errx.WithType(errx.T_NotFound),
		)
	}
	if err != nil {
		return nil, errx.Wrap(err, errx.WithCode(CodeInvalidConfig), errx.WithDetails(errx.D{"path": path}))
	}
	return data, nil
}

func validateConfig(config any, env string) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(config)

	failedFields := make([]string, 0)
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, fe := range errs {
			tagErr := fe.Tag()
			if fe.Param() != "" {
				tagErr += fmt.Sprintf("=%s", fe.Param())
			}
			failedFields = append(failedFields, fmt.Sprintf("%s: %s", fe.Namespace(), tagErr))
		}
	} else if err != nil {
		return invalidConfig(env, "failed to validate config", err)
	}

	if len(failedFields) > 0 {
		return errx.New(
			fmt.Sprintf("[cfgloader]: invalid fields in %s config -> %s", env, strings.Join(failedFields, ",  ")),
			errx.WithCode(CodeInvalidConfig),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"fields": strings.Join(failedFields, ",")}),
		)
	}
	return nil
}

func invalidConfig(env, msg string, cause error) error {
	return errx.New(
		fmt.Sprintf("[cfgloader]: %s for %s environment: %v", msg, env, cause),
		errx.WithCode(CodeInvalidConfig),
		errx.WithType(errx.T_Validation),
	)
}
