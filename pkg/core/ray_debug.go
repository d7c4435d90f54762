//go:build raydebug

package core

func init() {
	debugRayUnitLength = true
}
