package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext records what a handler sends and answers. Methods it does not
// override panic through the nil embedded Context.
type FakeContext struct {
	tele.Context

	User          *tele.User
	CallbackQuery *tele.Callback
	RespondErr    error

	Sent      []interface{}
	Responses []*tele.CallbackResponse
	Responded int
}

// NewFakeContext creates a context for a plain message from userID
func NewFakeContext(userID int64) *FakeContext {
	return &FakeContext{User: &tele.User{ID: userID}}
}

// NewFakeCallback creates a context for a button press from userID
func NewFakeCallback(userID int64, unique, data string) *FakeContext {
	f := NewFakeContext(userID)
	f.CallbackQuery = &tele.Callback{ID: "cb-1", Unique: unique, Data: data}
	return f
}

func (f *FakeContext) Sender() *tele.User       { return f.User }
func (f *FakeContext) Callback() *tele.Callback { return f.CallbackQuery }

func (f *FakeContext) Send(what interface{}, opts ...interface{}) error {
	f.Sent = append(f.Sent, what)
	return nil
}

func (f *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	f.Responded++
	f.Responses = append(f.Responses, resp...)
	return f.RespondErr
}
