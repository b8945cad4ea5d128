package arweave

import (
	"crypto/sha256"
)

const (
	MaxChunkSize = 256 * 1024
	MinChunkSize = 32 * 1024
	noteSize     = 32
)

type chunk struct {
	dataHash     []byte
	minByteRange int
	maxByteRange int
}

type merkleNode struct {
	id           []byte
	maxByteRange int
}

// chunkData splits data the way nodes expect: full sized chunks, except that
// a trailing remainder under MinChunkSize is balanced against the previous
// chunk.
func chunkData(data []byte) (chunks []chunk) {
	rest := data
	cursor := 0

	for len(rest) >= MaxChunkSize {
		chunkSize := MaxChunkSize
		nextChunkSize := len(rest) - MaxChunkSize
		if nextChunkSize > 0 && nextChunkSize < MinChunkSize {
			chunkSize = (len(rest) + 1) / 2
		}

		c := rest[:chunkSize]
		cursor += len(c)
		chunks = append(chunks, chunk{
			dataHash:     sha256Sum(c),
			minByteRange: cursor - len(c),
			maxByteRange: cursor,
		})
		rest = rest[chunkSize:]
	}

	chunks = append(chunks, chunk{
		dataHash:     sha256Sum(rest),
		minByteRange: cursor,
		maxByteRange: cursor + len(rest),
	})

	return
}

// DataRoot is the merkle root over the chunked data, or nil for empty data.
func DataRoot(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	chunks := chunkData(data)
	nodes := make([]merkleNode, 0, len(chunks))
	for _, c := range chunks {
		nodes = append(nodes, merkleNode{
			id:           sha256Sum(sha256Sum(c.dataHash), sha256Sum(intToNote(c.maxByteRange))),
			maxByteRange: c.maxByteRange,
		})
	}

	for len(nodes) > 1 {
		next := make([]merkleNode, 0, (len(nodes)+1)/2)
		for i := 0; i < len(nodes); i += 2 {
			if i+1 == len(nodes) {
				next = append(next, nodes[i])
				continue
			}
			left, right := nodes[i], nodes[i+1]
			next = append(next, merkleNode{
				id:           sha256Sum(sha256Sum(left.id), sha256Sum(right.id), sha256Sum(intToNote(left.maxByteRange))),
				maxByteRange: right.maxByteRange,
			})
		}
		nodes = next
	}

	return nodes[0].id
}

func intToNote(n int) []byte {
	buf := make([]byte, noteSize)
	for i := noteSize - 1; i >= 0 && n > 0; i-- {
		buf[i] = byte(n % 256)
		n /= 256
	}
	return buf
}

func sha256Sum(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}
