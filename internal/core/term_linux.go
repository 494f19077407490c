//go:build linux

package core

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TCGETS
