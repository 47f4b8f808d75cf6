//go:build !listdebug

package list

const debug = false
