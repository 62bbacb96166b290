package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContext_Accessors(t *testing.T) {
	var captured *Context[int]

	p := NewProcessor[int]()
	p.MustRegister("send", func(b *Builder[int]) {
		b.Argument("to").
			OptionalArgument("subject").
			ArrayArgument("body").
			Executes(func(ctx *Context[int]) {
				captured = ctx
				ctx.Out.Print("sent")
			})
	})

	require.Nil(t, p.Execute(`/send bob "hi there" a b`, 42))
	require.NotNil(t, captured)

	require.Equal(t, 42, captured.Payload)
	require.Equal(t, `/send bob "hi there" a b`, captured.Line())
	require.Len(t, captured.Tokens(), 5)

	require.True(t, captured.Has("to"))
	require.Equal(t, "bob", captured.String("to"))
	require.Equal(t, "hi there", captured.String("subject"))
	require.Equal(t, []string{"a", "b"}, captured.Strings("body"))
	require.Equal(t, []string{"bob"}, captured.Strings("to"))

	// Array arguments are not single tokens.
	_, ok := captured.Lookup("body")
	require.False(t, ok)

	subject := captured.TokensOf("subject")
	require.Len(t, subject, 1)
	require.True(t, subject[0].Quoted)
	require.Equal(t, 10, subject[0].Start)

	require.False(t, captured.Has("missing"))
	require.Equal(t, "fallback", captured.StringOr("missing", "fallback"))
	require.Nil(t, captured.Strings("missing"))

	require.Equal(t, "sent", p.Output())
}

func TestContext_OptionalStopsBinding(t *testing.T) {
	var has bool
	var body []string

	p := NewProcessor[struct{}]()
	p.MustRegister("send", func(b *Builder[struct{}]) {
		b.Argument("to").
			OptionalArgument("subject").
			ArrayArgument("body").
			Executes(func(ctx *Context[struct{}]) {
				has = ctx.Has("body")
				body = ctx.Strings("body")
			})
	})

	require.Nil(t, p.Execute("/send bob", struct{}{}))
	require.False(t, has)
	require.Nil(t, body)
}

func TestOutput(t *testing.T) {
	var out Output
	out.Print("a")
	out.Println("b")
	out.Printf("%d", 3)
	_, _ = out.WriteString("!")
	_, _ = out.Write([]byte("?"))

	require.Equal(t, "ab\n3!?", out.String())
	require.Equal(t, 6, out.Len())

	out.Reset()
	require.Zero(t, out.Len())
}
