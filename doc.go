// Package main provides the entry point of webfolio, a company portfolio website.
// It serves the public page with its contact and newsletter forms, local
// accounts and a staff admin area managing the published content, using fiber
// for http and gorm for persistence.
package main
