package config

import "errors"

var (
	// ErrUnknownSource is returned when source.kind is not one of the supported kinds.
	ErrUnknownSource = errors.New("unknown catalog source")

	// ErrMissingHTTPURL is returned for the http source without source.http_url.
	ErrMissingHTTPURL = errors.New("source.http_url is required for the http source")

	// ErrMissingSQLDSN is returned for the sql source without a driver or DSN.
	ErrMissingSQLDSN = errors.New("source.sql_driver and source.sql_dsn are required for the sql source")

	// ErrMissingS3Object is returned for the s3 source without bucket or key.
	ErrMissingS3Object = errors.New("source.s3_bucket and source.s3_key are required for the s3 source")

	// ErrInvalidSeedDelay is returned when the simulated seed delay is negative.
	ErrInvalidSeedDelay = errors.New("source.seed_delay must not be negative")

	// ErrInvalidRandomLimit is returned when the random-pick rate limit is negative.
	ErrInvalidRandomLimit = errors.New("server.random_limit must not be negative")
)
