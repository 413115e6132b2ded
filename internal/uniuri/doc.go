// Package uniuri generates random, url safe names for stored media objects.
package uniuri
