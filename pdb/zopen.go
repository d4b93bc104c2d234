package pdb

import (
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

//zReadCloser wraps a gzip decompressor together with its backing file so
//that Close releases both, decompressor first.
type zReadCloser struct {
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

func (z *zReadCloser) Read(p []byte) (int, error) {
	return z.zrdr.Read(p)
}

func (z *zReadCloser) Close() error {
	zerr := z.zrdr.Close()
	ferr := z.fp.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

//openText opens a structure file for reading, transparently decompressing
//it when gzipped is set. A stream that does not start with a gzip header is
//a recognized per-file defect, not a fatal error.
func openText(path string, gzipped bool) (io.ReadCloser, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !gzipped {
		return fp, nil
	}
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		fp.Close()
		return nil, Error{message: BadGzip, filename: path}
	}
	return &zReadCloser{fp: fp, zrdr: zrdr}, nil
}
