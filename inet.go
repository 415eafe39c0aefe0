// Package inet provides an IPv4/IPv6 address value type with the historical
// permissive text grammar and its canonical serializer.
package inet

const Version = "0.1.0"
