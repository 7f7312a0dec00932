// Package archive keeps a history of benchmark reports in a single file.
//
// Every report is encoded as a google.protobuf.Struct, prefixed with its varint
// length and compressed into one zstd frame that is appended to the file. A
// file of concatenated frames decodes as one zstd stream holding the delimited
// records in order.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/iamNilotpal/spanbench/internal/adapters/compression"
	"github.com/iamNilotpal/spanbench/internal/core/domain"
	"github.com/iamNilotpal/spanbench/internal/core/ports"
	validation "github.com/iamNilotpal/spanbench/pkg/errors"
	"github.com/iamNilotpal/spanbench/pkg/fs"
	"go.uber.org/multierr"
	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/types/known/structpb"
)

const filePermission = 0644

var _ ports.ArchivePort = (*Archive)(nil)

// Archive appends reports to, and reads them back from, one file.
// It is safe for concurrent use within a process.
type Archive struct {
	path  string
	fs    *fs.LocalFileSystem
	codec ports.CompressionPort
	mu    sync.Mutex
}

// Open prepares the archive at opts.Path. The file is created on the first Append.
func Open(opts *domain.ArchiveOptions) (*Archive, error) {
	if opts == nil || opts.Path == "" {
		return nil, validation.Validationf("archive.path", "", "path is required")
	}

	codec, err := compression.NewZstdCompression(opts.Compression)
	if err != nil {
		return nil, validation.NewBenchError(validation.ErrorArchive, "open", err)
	}

	return &Archive{path: opts.Path, fs: fs.NewLocalFileSystem(), codec: codec}, nil
}

// Returns the file the archive writes to.
func (a *Archive) Path() string {
	return a.path
}

// Append encodes report and appends it to the file as one zstd frame.
func (a *Archive) Append(report *domain.Report) (err error) {
	msg, err := encodeReport(report)
	if err != nil {
		return validation.NewBenchError(validation.ErrorArchive, "encode", err)
	}

	var record bytes.Buffer
	if _, err := protodelim.MarshalTo(&record, msg); err != nil {
		return validation.NewBenchError(validation.ErrorArchive, "encode", err)
	}

	frame, err := a.codec.Compress(record.Bytes())
	if err != nil {
		return validation.NewBenchError(validation.ErrorArchive, "compress", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	file, err := a.fs.OpenAppend(a.path, filePermission)
	if err != nil {
		return validation.NewBenchError(validation.ErrorArchive, "append", err)
	}
	defer func() {
		err = multierr.Append(err, validation.NewBenchError(validation.ErrorArchive, "close", file.Close()))
	}()

	// One write per frame keeps O_APPEND writers from interleaving.
	if _, err := file.Write(frame); err != nil {
		return validation.NewBenchError(validation.ErrorArchive, "append", err)
	}
	return nil
}

// ReadAll decodes every report in the file, oldest first. A missing file
// holds no reports.
func (a *Archive) ReadAll() ([]domain.Report, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	exists, err := a.fs.Exists(a.path)
	if err != nil {
		return nil, validation.NewBenchError(validation.ErrorArchive, "read", err)
	}
	if !exists {
		return nil, nil
	}

	data, err := a.fs.ReadFile(a.path)
	if err != nil {
		return nil, validation.NewBenchError(validation.ErrorArchive, "read", err)
	}

	records, err := a.codec.Decompress(data)
	if err != nil {
		return nil, validation.NewBenchError(validation.ErrorArchive, "decompress", err)
	}

	reader := bytes.NewReader(records)
	var reports []domain.Report

	for {
		msg := &structpb.Struct{}
		if err := protodelim.UnmarshalFrom(reader, msg); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, validation.NewBenchError(
				validation.ErrorArchive, "decode", fmt.Errorf("record %d : %w", len(reports), err),
			)
		}

		report, err := decodeReport(msg)
		if err != nil {
			return nil, validation.NewBenchError(
				validation.ErrorArchive, "decode", fmt.Errorf("record %d : %w", len(reports), err),
			)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// Close releases the compressor.
func (a *Archive) Close() error {
	return a.codec.Close()
}
