//go:build !e407_fast

package profiles

const defaultName = NameE407
