package config

// Merge merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func Merge(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Strictness != "" {
		target.Strictness = source.Strictness
		target.Sources["strictness"] = sourceType
	}
	if source.MockMaker != "" {
		target.MockMaker = source.MockMaker
		target.Sources["mockMaker"] = sourceType
	}
	if source.RecorderCapacity != 0 {
		target.RecorderCapacity = source.RecorderCapacity
		target.Sources["recorderCapacity"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
	// Checking `if source.X` cannot detect an explicit false, so booleans
	// go through SetFields, populated during file loading.
	if boolIsSet(source, "serializable") {
		target.Serializable = source.Serializable
		target.Sources["serializable"] = sourceType
	}
	if boolIsSet(source, "verboseLogging") {
		target.VerboseLogging = source.VerboseLogging
		target.Sources["verboseLogging"] = sourceType
	}
}

// boolIsSet reports whether a boolean field identified by its YAML key was
// explicitly set in the source config. When SetFields is available
// (file-loaded configs), it checks for the key's presence. Otherwise it falls
// back to treating true as "set", which is safe for programmatic configs.
func boolIsSet(cfg *Config, yamlKey string) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	switch yamlKey {
	case "serializable":
		return cfg.Serializable
	case "verboseLogging":
		return cfg.VerboseLogging
	}
	return false
}
