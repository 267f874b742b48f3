package segment

import "os"

// Oracle answers existence and file-type questions about paths. It must
// reflect the real filesystem at call time; results are never cached here.
// Callers pass the original, unsegmented path string so that relative-path
// resolution matches their expectations.
type Oracle interface {
	Exists(path string) bool
	IsFile(path string) bool
}

// osOracle delegates to os.Stat.
type osOracle struct{}

// OS returns the Oracle backed by the real filesystem.
func OS() Oracle {
	return osOracle{}
}

func (osOracle) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osOracle) IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
