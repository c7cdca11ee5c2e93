package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bind binds every flag to v under its configuration key, which is the
// flag name with dashes replaced by underscores
func bind(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}
