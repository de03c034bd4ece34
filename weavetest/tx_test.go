package weavetest

import (
	"testing"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
)

func TestTxLoadMsg(t *testing.T) {
	tx := &Tx{Msg: &Msg{RoutePath: "kitty/create"}}
	if got := weave.GetPath(tx); got != "kitty/create" {
		t.Fatalf("unexpected path: %q", got)
	}

	var msg Msg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		t.Fatalf("cannot load message: %s", err)
	}
	if msg.RoutePath != "kitty/create" {
		t.Fatalf("unexpected message loaded: %+v", msg)
	}

	invalid := &Tx{Msg: &Msg{RoutePath: "kitty/create", Err: errors.ErrInput}}
	if err := weave.LoadMsg(invalid, &msg); !errors.ErrInput.Is(err) {
		t.Fatalf("want validation error, got %+v", err)
	}

	broken := &Tx{Err: errors.ErrMsg}
	if err := weave.LoadMsg(broken, &msg); !errors.ErrMsg.Is(err) {
		t.Fatalf("want message error, got %+v", err)
	}
	if got := weave.GetPath(broken); got != "(missing)" {
		t.Fatalf("unexpected path: %q", got)
	}
}

func TestNewConditionIsUnique(t *testing.T) {
	a, b := NewCondition(), NewCondition()
	if a.Equals(b) {
		t.Fatal("conditions must be unique")
	}
	if err := NewAddress().Validate(); err != nil {
		t.Fatalf("invalid address: %s", err)
	}
}
