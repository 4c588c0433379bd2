// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file from the working directory if one exists, then
// overwrites every `env`-tagged field of cfg whose variable is set and
// non-empty. Nested structs are walked recursively.
//
// Supported field kinds: string, int*, bool, float*.
func LoadEnv(cfg interface{}) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("LoadEnv: .env: %w", err)
	}

	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("LoadEnv: expected a pointer to a struct, got %T", cfg)
	}

	return applyEnv(v.Elem())
}

func applyEnv(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		meta := t.Field(i)

		if field.Kind() == reflect.Struct {
			if err := applyEnv(field); err != nil {
				return err
			}
			continue
		}

		key := strings.TrimSpace(meta.Tag.Get("env"))
		if key == "" {
			continue
		}
		raw, ok := os.LookupEnv(key)
		if !ok || raw == "" {
			continue
		}

		if err := setField(field, key, raw); err != nil {
			return err
		}
	}

	return nil
}

func setField(field reflect.Value, key, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("LoadEnv: %s=%q is not an integer: %w", key, raw, ErrInvalidConfig)
		}
		field.SetInt(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("LoadEnv: %s=%q is not a boolean: %w", key, raw, ErrInvalidConfig)
		}
		field.SetBool(b)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("LoadEnv: %s=%q is not a number: %w", key, raw, ErrInvalidConfig)
		}
		field.SetFloat(f)

	default:
		return fmt.Errorf("LoadEnv: %s: unsupported kind %s", key, field.Kind())
	}

	return nil
}
