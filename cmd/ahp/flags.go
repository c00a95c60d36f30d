// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlag ties a flag to a viper key. Binding only fails for a nil flag,
// which is a programming error.
func bindFlag(f *pflag.Flag, key string) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(err)
	}
}
