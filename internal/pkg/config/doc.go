// Package config holds the validated settings structures of the
// application (logging, database, REST server) and the viper-based
// loading of the REST configuration from YAML and environment.

package config
