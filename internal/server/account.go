package server

import (
	"errors"
	"fmt"

	"github.com/fsbteam/chat/internal/command"
	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/format"
)

func registerAccount(p *command.Processor[*Session]) {
	p.MustRegister("register", func(b *command.Builder[*Session]) {
		b.Description("Create a new account.").
			RequireCondition(requireGuest).
			Argument("username").
			Argument("password").
			Executes(doRegister)
	})
	p.MustRegister("login", func(b *command.Builder[*Session]) {
		b.Description("Log in to an existing account.").
			RequireCondition(requireGuest).
			Argument("username").
			Argument("password").
			Executes(doLogin)
	})
	p.MustRegister("logout", func(b *command.Builder[*Session]) {
		b.Description("Log out of the account.").
			RequireCondition(requireAuth).
			Executes(func(ctx *Ctx) {
				ctx.Payload.log.Info("%s logged out", me(ctx).Username)
				ctx.Payload.setUser(nil)
				ctx.Out.Println("Successfully logged out.")
			})
	})
	p.MustRegister("changeName", func(b *command.Builder[*Session]) {
		b.Description("Set a new nickname.").
			RequireCondition(requireAuth).
			Argument("nickname").
			Executes(doChangeName)
	})
	p.MustRegister("changePassword", func(b *command.Builder[*Session]) {
		b.Description("Set a new password.").
			RequireCondition(requireAuth).
			Argument("oldPassword").
			Argument("password").
			Argument("passwordAgain").
			Executes(doChangePassword)
	})
	p.MustRegister("profile", func(b *command.Builder[*Session]) {
		b.Description("Show the profile of a user, or your own.").
			RequireCondition(requireAuth).
			OptionalArgument("username").
			Executes(doProfile)
	})
	p.MustRegister("open", func(b *command.Builder[*Session]) {
		b.Description("Open a group chat.").
			RequireCondition(requireAuth).
			Argument("groupname").
			Executes(doOpen)
	})
}

func doRegister(ctx *Ctx) {
	username := ctx.String("username")
	if !validName(username) {
		ctx.Out.Println("Username must be 3-24 letters, digits or underscores.")
		return
	}

	u, err := ctx.Payload.Store().CreateUser(username, ctx.String("password"))
	if errors.Is(err, domain.ErrExists) {
		ctx.Out.Println("Username is already taken.")
		return
	}
	if err != nil {
		fail(ctx, err, "")
		return
	}

	ctx.Payload.setUser(&u)
	ctx.Payload.log.Info("registered %s", u.Username)
	ctx.Out.Printf("Welcome, %s!\n", u.Username)
}

func doLogin(ctx *Ctx) {
	u, err := ctx.Payload.Store().Authenticate(ctx.String("username"), ctx.String("password"))
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrWrongPassword) {
		ctx.Out.Println("Wrong username or password.")
		return
	}
	if err != nil {
		fail(ctx, err, "")
		return
	}

	ctx.Payload.setUser(&u)
	ctx.Payload.log.Info("%s logged in", u.Username)
	ctx.Out.Printf("Logged in as %s.\n", u.DisplayName())

	if n := pendingCount(ctx, u); n != "" {
		ctx.Out.Println(n)
	}
}

// pendingCount summarises friend requests and invitations waiting for u.
func pendingCount(ctx *Ctx, u domain.User) string {
	requests, err := ctx.Payload.Store().ListIncomingRequests(u.ID)
	if err != nil {
		return ""
	}
	invites, err := ctx.Payload.Store().ListInvites(u.ID)
	if err != nil {
		return ""
	}
	if len(requests) == 0 && len(invites) == 0 {
		return ""
	}
	return fmt.Sprintf("You have %d friend request(s) and %d group invitation(s).", len(requests), len(invites))
}

func doChangeName(ctx *Ctx) {
	u := me(ctx)
	nickname := ctx.String("nickname")
	if err := ctx.Payload.Store().ChangeNickname(u.ID, nickname); err != nil {
		fail(ctx, err, "")
		return
	}
	u.Nickname = nickname
	ctx.Payload.setUser(&u)
	ctx.Out.Printf("Your nickname is now %s.\n", nickname)
}

func doChangePassword(ctx *Ctx) {
	if ctx.String("password") != ctx.String("passwordAgain") {
		ctx.Out.Println("Passwords do not match.")
		return
	}

	err := ctx.Payload.Store().ChangePassword(me(ctx).ID, ctx.String("oldPassword"), ctx.String("password"))
	if errors.Is(err, domain.ErrWrongPassword) {
		ctx.Out.Println("Wrong password.")
		return
	}
	if err != nil {
		fail(ctx, err, "")
		return
	}
	ctx.Out.Println("Password changed.")
}

func doProfile(ctx *Ctx) {
	u := me(ctx)
	if username, ok := ctx.Lookup("username"); ok {
		var found bool
		if u, found = lookupUser(ctx, username); !found {
			return
		}
	}

	status := "offline"
	if ctx.Payload.Hub().IsOnline(u.ID) {
		status = "online"
	}

	ctx.Out.Printf("%s (@%s), %s\n", u.DisplayName(), u.Username, status)
	ctx.Out.Printf("Member since %s\n", format.Date(u.CreatedAt.Local()))

	if groups, err := ctx.Payload.Store().ListUserGroups(u.ID); err == nil {
		ctx.Out.Printf("Groups: %d\n", len(groups))
	}
	if friends, err := ctx.Payload.Store().ListFriends(u.ID); err == nil {
		ctx.Out.Printf("Friends: %d\n", len(friends))
	}
}

func doOpen(ctx *Ctx) {
	u := me(ctx)
	store := ctx.Payload.Store()

	group, err := store.GroupByName(ctx.String("groupname"))
	if err != nil {
		fail(ctx, err, msgGroupNotFound)
		return
	}
	if _, err := store.Role(group.ID, u.ID); err != nil {
		fail(ctx, err, "You are not a member of that group.")
		return
	}

	history, err := store.History(group.ID, ctx.Payload.server.cfg.HistorySize)
	if err != nil {
		fail(ctx, err, "")
		return
	}

	ctx.Payload.setGroup(&group)
	ctx.Out.Printf("Opened %s.\n", group.Title())
	mode := ctx.Payload.server.cfg.ClockMode
	for _, m := range history {
		ctx.Out.Println(chatLine(m, m.SenderID == u.ID, mode))
	}
}
