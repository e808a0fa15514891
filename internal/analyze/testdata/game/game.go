// Package game is loaded from source by the analyze tests.
package game

import "strconv"

//remap:class test.Level
type Level struct {
	number int32
	Tags   []string
}

func (l *Level) Name() string { return "Level" }

func (l *Level) Tick(n int32) int64 { return int64(l.number + n) }

func (l *Level) private() {}

// ServerLevel is a level hosted by a server.
//
//remap:class test.ServerLevel
type ServerLevel struct {
	Level
	number1 int32
	Owner   *PrivateClass
}

func (s *ServerLevel) Name() string { return "ServerLevel" }

//remap:class test.PrivateClass
type PrivateClass struct {
	secret string
}

func NewPrivateClass(secret string) *PrivateClass {
	return &PrivateClass{secret: secret}
}

// NewPrivateClassFromInt parses n.
func NewPrivateClassFromInt(n int) (*PrivateClass, error) {
	return &PrivateClass{secret: strconv.Itoa(n)}, nil
}

//remap:static PrivateClass
var staticField = "initial"

var (
	//remap:static PrivateClass
	Counter int64

	unrelated = 1
)

//remap:static PrivateClass
func Parse(s string) (*PrivateClass, error) {
	return &PrivateClass{secret: s}, nil
}

type Path struct {
	elems [][]byte
	any   any
}

type Mode int
