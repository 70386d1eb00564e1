//go:build android || !(darwin || freebsd || linux || windows) || !(amd64 || arm64)

package dnssd

var defaultLibraries []string

func openLibrary(string) (Library, error) {
	return nil, ErrUnsupportedPlatform
}
