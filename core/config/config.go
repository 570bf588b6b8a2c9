// Package config holds the library-wide numeric tolerance settings.
package config

// NDigits is the number of significant decimal digits kept to the right of
// the decimal point when rounding randomly drawn field elements.
const NDigits = 12

// Threshold is the maximum deviation at which two numbers are still treated
// as equal. It equals 1 / 10^NDigits.
const Threshold = 1e-12

// MaxDenominator bounds the denominator of rational field elements obtained
// from floating-point input. It equals trunc(1 / Threshold).
const MaxDenominator = 1_000_000_000_000
