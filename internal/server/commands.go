package server

import (
	"errors"

	"github.com/fsbteam/chat/internal/command"
	"github.com/fsbteam/chat/internal/domain"
)

// Ctx is the command context of a session.
type Ctx = command.Context[*Session]

// RegisterCommands declares every command a client may send. It is run
// once per session on a fresh processor.
func RegisterCommands(p *command.Processor[*Session]) {
	registerAccount(p)
	registerFriends(p)
	registerGroups(p)
	registerControl(p)
}

var (
	requireAuth = command.Require(msgNotLoggedIn, func(ctx *Ctx) bool {
		_, ok := ctx.Payload.User()
		return ok
	})

	requireGuest = command.Require(msgAlreadyLoggedIn, func(ctx *Ctx) bool {
		_, ok := ctx.Payload.User()
		return !ok
	})

	requireGroup = command.Require(msgOpenGroupFirst, func(ctx *Ctx) bool {
		_, ok := ctx.Payload.Group()
		return ok
	})

	requireManager = command.Require(msgNoPermission, func(ctx *Ctx) bool {
		return roleOf(ctx).CanManage()
	})

	requireOwner = command.Require(msgOwnerOnly, func(ctx *Ctx) bool {
		return roleOf(ctx) == domain.RoleOwner
	})

	requireNotOwner = command.Require(msgChownFirst, func(ctx *Ctx) bool {
		return roleOf(ctx) != domain.RoleOwner
	})
)

// roleOf returns the session user's role in the open group, or "" when
// there is none.
func roleOf(ctx *Ctx) domain.Role {
	user, ok := ctx.Payload.User()
	if !ok {
		return ""
	}
	group, ok := ctx.Payload.Group()
	if !ok {
		return ""
	}
	role, err := ctx.Payload.Store().Role(group.ID, user.ID)
	if err != nil {
		return ""
	}
	return role
}

// me returns the session user; guarded commands always have one.
func me(ctx *Ctx) domain.User {
	u, _ := ctx.Payload.User()
	return u
}

func openGroup(ctx *Ctx) domain.Group {
	g, _ := ctx.Payload.Group()
	return g
}

// lookupUser resolves a username argument, printing a reply on failure.
func lookupUser(ctx *Ctx, username string) (domain.User, bool) {
	u, err := ctx.Payload.Store().UserByUsername(username)
	if err != nil {
		fail(ctx, err, msgUserNotFound)
		return domain.User{}, false
	}
	return u, true
}

// fail prints notFoundMsg for domain.ErrNotFound and logs anything else.
func fail(ctx *Ctx, err error, notFoundMsg string) {
	if errors.Is(err, domain.ErrNotFound) && notFoundMsg != "" {
		ctx.Out.Println(notFoundMsg)
		return
	}
	ctx.Payload.log.Error("/%s: %v", commandName(ctx.Tokens()), err)
	ctx.Out.Println(msgSomethingWrong)
}

// commandName returns the root name of a line for logs. Arguments are
// left out since they may hold passwords.
func commandName(tokens []command.Token) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0].Content
}
