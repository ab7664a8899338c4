// Package config provides configuration loading and validation for the DTMF
// tone file service. It handles YAML-based configuration with struct
// validation and pins the audio format constants the container contract
// depends on.
package config
