package prevalence

import (
	"bufio"
	"github.com/klauspost/pgzip"
	"github.com/vertgenlab/gonomics/exception"
	"io"
	"os"
	"strings"
)

const maxLineSize = 1 << 26

// lineReader scans lines from a plain text or gzipped file.
type lineReader struct {
	*bufio.Scanner
	file *os.File
	gz   *pgzip.Reader
}

// openLines opens a file for reading line by line. Files ending in .gz are decompressed.
// Unlike fileio.EasyOpen, a file that can not be opened is returned as an error so that
// missing samples can be skipped.
func openLines(name string) (*lineReader, error) {
	var err error
	ans := new(lineReader)
	ans.file, err = os.Open(name)
	if err != nil {
		return nil, err
	}

	var r io.Reader = ans.file
	if strings.HasSuffix(name, ".gz") {
		ans.gz, err = pgzip.NewReader(ans.file)
		if err != nil {
			ans.file.Close()
			return nil, err
		}
		r = ans.gz
	}

	ans.Scanner = bufio.NewScanner(r)
	ans.Scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return ans, nil
}

func (r *lineReader) Close() error {
	if r.gz != nil {
		if err := r.gz.Close(); err != nil {
			r.file.Close()
			return err
		}
	}
	return r.file.Close()
}

func cleanup(f io.Closer) {
	err := f.Close()
	exception.PanicOnErr(err)
}
