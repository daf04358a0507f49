package apk

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	apperrors "github.com/huanfeng/apkscope/internal/errors"
)

// HashChunkSize is the read buffer used while hashing
const HashChunkSize = 4096

// Digests holds hex-encoded digests of a file
type Digests struct {
	MD5    string
	SHA256 string
}

// CalculateHashes streams the file once, feeding both digests
func CalculateHashes(filePath string) (*Digests, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewInputNotFoundError(filePath, err)
		}
		return nil, apperrors.NewInputUnreadableError(filePath, err)
	}
	defer file.Close()

	return HashReader(file)
}

// HashReader computes the digests of everything read from r
func HashReader(r io.Reader) (*Digests, error) {
	md5Hash := md5.New()
	sha256Hash := sha256.New()

	multiWriter := io.MultiWriter(md5Hash, sha256Hash)
	buf := make([]byte, HashChunkSize)

	// io.CopyBuffer would bypass buf if r implements WriterTo (as *os.File does)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := multiWriter.Write(buf[:n]); werr != nil {
				return nil, werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return &Digests{
		MD5:    hex.EncodeToString(md5Hash.Sum(nil)),
		SHA256: hex.EncodeToString(sha256Hash.Sum(nil)),
	}, nil
}
