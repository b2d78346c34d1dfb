package checkpoint

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/okkevaneck/prospr/lattice"
)

const algorithmBnB = "depth_first_bnb"

var requiredKeys = []string{
	"algorithm", "current_hash", "aminos_placed", "solutions_checked",
	"dfs_stack", "move", "placed_amino", "best_score", "score",
	"best_hash", "iterations",
}

// Load reads a checkpoint file written by Save. It returns ErrMissingKey
// wrapped with the key name if any required key is absent, or
// ErrInvalidValue wrapped with the offending field if a value cannot be
// parsed.
func Load(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fields := make(map[string]string, len(requiredKeys))
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		fields[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, k := range requiredKeys {
		if _, ok := fields[k]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingKey, k)
		}
	}

	c := &Checkpoint{Algorithm: fields["algorithm"]}

	var err2 error
	if c.CurrentHash, err2 = parseMoves(fields["current_hash"]); err2 != nil {
		return nil, fmt.Errorf("%w: current_hash: %v", ErrInvalidValue, err2)
	}
	if c.AminosPlaced, err2 = parseUint(fields["aminos_placed"]); err2 != nil {
		return nil, fmt.Errorf("%w: aminos_placed: %v", ErrInvalidValue, err2)
	}
	if c.SolutionsChecked, err2 = parseUint(fields["solutions_checked"]); err2 != nil {
		return nil, fmt.Errorf("%w: solutions_checked: %v", ErrInvalidValue, err2)
	}
	if c.DFSStack, err2 = parseMoves(fields["dfs_stack"]); err2 != nil {
		return nil, fmt.Errorf("%w: dfs_stack: %v", ErrInvalidValue, err2)
	}
	move, err2 := strconv.Atoi(fields["move"])
	if err2 != nil {
		return nil, fmt.Errorf("%w: move: %v", ErrInvalidValue, err2)
	}
	c.Move = lattice.Move(move)
	placedAmino, err2 := strconv.Atoi(fields["placed_amino"])
	if err2 != nil || (placedAmino != 0 && placedAmino != 1) {
		return nil, fmt.Errorf("%w: placed_amino", ErrInvalidValue)
	}
	c.PlacedAmino = placedAmino == 1
	if c.BestScore, err2 = strconv.Atoi(fields["best_score"]); err2 != nil {
		return nil, fmt.Errorf("%w: best_score: %v", ErrInvalidValue, err2)
	}
	if c.Score, err2 = strconv.Atoi(fields["score"]); err2 != nil {
		return nil, fmt.Errorf("%w: score: %v", ErrInvalidValue, err2)
	}
	if c.BestHash, err2 = parseMoves(fields["best_hash"]); err2 != nil {
		return nil, fmt.Errorf("%w: best_hash: %v", ErrInvalidValue, err2)
	}
	if c.Iterations, err2 = parseUint(fields["iterations"]); err2 != nil {
		return nil, fmt.Errorf("%w: iterations: %v", ErrInvalidValue, err2)
	}

	return c, nil
}

// Save writes c to path in the key=value format Load understands.
func (c *Checkpoint) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	placedAmino := 0
	if c.PlacedAmino {
		placedAmino = 1
	}

	lines := []string{
		"algorithm=" + algorithmBnB,
		"current_hash=" + joinMoves(c.CurrentHash),
		"aminos_placed=" + strconv.FormatUint(c.AminosPlaced, 10),
		"solutions_checked=" + strconv.FormatUint(c.SolutionsChecked, 10),
		"dfs_stack=" + joinMoves(c.DFSStack),
		"move=" + strconv.Itoa(int(c.Move)),
		"placed_amino=" + strconv.Itoa(placedAmino),
		"best_score=" + strconv.Itoa(c.BestScore),
		"score=" + strconv.Itoa(c.Score),
		"best_hash=" + joinMoves(c.BestHash),
		"iterations=" + strconv.FormatUint(c.Iterations, 10),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return w.Flush()
}

// parseLine strips comments and surrounding whitespace and splits a
// key=value line, matching utils.cpp's parse_ini_line.
func parseLine(line string) (key, value string, ok bool) {
	if i := strings.IndexAny(line, ";#"); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", false
	}

	i := strings.IndexByte(line, '=')
	if i < 0 {
		return "", "", false
	}

	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}

func joinMoves(moves []lattice.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = strconv.Itoa(int(m))
	}

	return strings.Join(parts, ",")
}

func parseMoves(s string) ([]lattice.Move, error) {
	if s == "" {
		return nil, nil
	}

	tokens := strings.Split(s, ",")
	moves := make([]lattice.Move, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		moves[i] = lattice.Move(v)
	}

	return moves, nil
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
