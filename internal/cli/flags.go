package cli

// switchFlag returns a Flag without a value that calls set when present.
func switchFlag(long, short, desc string, isSet func() bool, set func()) Flag {
	return Flag{
		Long:        long,
		Short:       short,
		Description: desc,
		IsSet:       isSet,
		Fn: func(string) error {
			set()
			return nil
		},
	}
}

// boolFlag sets target to true when present.
func boolFlag(target *bool, long, short, desc string) Flag {
	return switchFlag(long, short, desc,
		func() bool { return *target },
		func() { *target = true },
	)
}

// ptrBoolFlag points target at true when present, so an unset flag can
// still be filled in from the config file.
func ptrBoolFlag(target **bool, long, short, desc string) Flag {
	return switchFlag(long, short, desc,
		func() bool { return *target != nil },
		func() {
			v := true
			*target = &v
		},
	)
}

// stringFlag stores its value in target.
func stringFlag(target *string, long, short, args, desc string) Flag {
	return cfgFlag(long, short, args, desc,
		func() bool { return *target != "" },
		func(value string) error {
			*target = value
			return nil
		},
	)
}

// cfgFlag hands its value to parse, typically a config.Config Parse method.
func cfgFlag(long, short, args, desc string, isSet func() bool, parse func(string) error) Flag {
	return Flag{
		Long:        long,
		Short:       short,
		Args:        args,
		Description: desc,
		IsSet:       isSet,
		Fn:          parse,
	}
}

func (f Flag) WithAliases(aliases ...string) Flag {
	f.Aliases = aliases
	return f
}

// WithValues restricts the flag to values, which are also listed in help.
func (f Flag) WithValues(values ...string) Flag {
	f.Values = values
	return f
}

func (f Flag) WithDefault(def string) Flag {
	f.Default = def
	return f
}
