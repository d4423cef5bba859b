package machines

import (
	"errors"
	"fmt"
	"strings"
)

type Move int

const (
	Stay Move = iota
	Left
	Right
)

// Canonical move codes. Parsing also accepts lower case.
const (
	MoveLeftCode  = "L"
	MoveRightCode = "R"
	MoveStayCode  = "N"
)

var ErrBadMove = errors.New("bad move")

func ParseMove(str string) (Move, error) {
	switch strings.ToUpper(str) {
	case MoveLeftCode:
		return Left, nil
	case MoveRightCode:
		return Right, nil
	case MoveStayCode:
		return Stay, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMove, str)
}

// Delta is the head displacement of the move.
func (m Move) Delta() int {
	switch m {
	case Left:
		return -1
	case Right:
		return 1
	}
	return 0
}

func (m Move) String() string {
	switch m {
	case Left:
		return MoveLeftCode
	case Right:
		return MoveRightCode
	case Stay:
		return MoveStayCode
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

func (m Move) MarshalText() ([]byte, error) {
	switch m {
	case Left, Right, Stay:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrBadMove, int(m))
}

func (m *Move) UnmarshalText(text []byte) error {
	move, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = move
	return nil
}
