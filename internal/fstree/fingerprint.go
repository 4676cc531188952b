package fstree

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	mt "github.com/txaty/go-merkletree"

	"iddfs-go/internal/hash"
)

// fileBlock is one merkle leaf: a file's path and content digest.
type fileBlock struct {
	path   string
	digest uint64
}

func (b fileBlock) Serialize() ([]byte, error) {
	buf := make([]byte, 0, len(b.path)+9)
	buf = append(buf, b.path...)
	buf = append(buf, 0)
	return binary.BigEndian.AppendUint64(buf, b.digest), nil
}

// Fingerprint returns a hex Merkle root over every file below root, in
// depth-first child order. It changes whenever a file is added, removed,
// renamed, moved or edited.
func Fingerprint(root *Entry) (string, error) {
	var blocks []mt.DataBlock
	var walkErr error
	root.Walk(func(e *Entry) {
		if walkErr != nil || !e.file {
			return
		}
		data, err := e.Content()
		if err != nil {
			walkErr = fmt.Errorf("%s: %w", strings.Join(e.PathLabels(), "/"), err)
			return
		}
		blocks = append(blocks, fileBlock{
			path:   strings.Join(e.PathLabels(), "/"),
			digest: hash.Sum(data),
		})
	})
	if walkErr != nil {
		return "", walkErr
	}

	// The merkle tree needs at least two leaves
	if len(blocks) < 2 {
		data := []byte("empty-tree")
		if len(blocks) == 1 {
			var err error
			if data, err = blocks[0].Serialize(); err != nil {
				return "", err
			}
		}
		sum, err := hash.XXHashFunc(data)
		if err != nil {
			return "", fmt.Errorf("failed to hash tree: %w", err)
		}
		return hex.EncodeToString(sum), nil
	}

	tree, err := mt.New(&mt.Config{HashFunc: hash.XXHashFunc}, blocks)
	if err != nil {
		return "", fmt.Errorf("failed to build merkle tree: %w", err)
	}
	return hex.EncodeToString(tree.Root), nil
}
