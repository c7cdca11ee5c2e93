package checkpointer

import (
	"fmt"
	"path/filepath"
)

// fileEnumerator enumerates backup filenames in a directory
type fileEnumerator struct {
	i         int
	dir       string
	prefix    string
	extension string
}

// filename returns the name of the next consecutive enumerated file
func (f *fileEnumerator) filename() string {
	f.i++
	name := fmt.Sprintf("%v-%04d%v", f.prefix, f.i, f.extension)
	return filepath.Join(f.dir, name)
}

// FilenameEnumerator returns a function which will return filenames in
// dir with a zero-padded counter suffix, e.g. dir/table-0001.gob.gz.
// Each time the returned function is called, the counter is one higher
// than on the previous call, starting at start+1.
func FilenameEnumerator(start int, dir, prefix, extension string) func() string {
	enum := fileEnumerator{i: start, dir: dir, prefix: prefix,
		extension: extension}

	return enum.filename
}
