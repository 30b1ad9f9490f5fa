//go:build windows

package shell

import "os"

func ignoreSignal(sig os.Signal) bool { return false }

func signalName(sig os.Signal) string { return sig.String() }

func handleSignal(sig os.Signal, stderr *os.File) {}
