package server

import (
	"errors"
	"fmt"

	"github.com/fsbteam/chat/internal/command"
	"github.com/fsbteam/chat/internal/domain"
)

func registerFriends(p *command.Processor[*Session]) {
	p.MustRegister("friends", func(b *command.Builder[*Session]) {
		b.Description("Manage your friends.").
			RequireCondition(requireAuth).
			Subcommand("list", func(b *command.Builder[*Session]) {
				b.Description("List your friends.").Executes(doFriendsList)
			}).
			Subcommand("request", func(b *command.Builder[*Session]) {
				b.Description("Send a friend request.").
					Argument("username").
					Executes(doFriendRequest).
					Subcommand("dismiss", func(b *command.Builder[*Session]) {
						b.Description("Withdraw a friend request.").Executes(doFriendDismiss)
					})
			}).
			Subcommand("accept", func(b *command.Builder[*Session]) {
				b.Description("Accept a friend request, the oldest one by default.").
					OptionalArgument("username").
					Executes(func(ctx *Ctx) { answerFriendRequest(ctx, true) })
			}).
			Subcommand("deny", func(b *command.Builder[*Session]) {
				b.Description("Deny a friend request, the oldest one by default.").
					OptionalArgument("username").
					Executes(func(ctx *Ctx) { answerFriendRequest(ctx, false) })
			}).
			Subcommand("remove", func(b *command.Builder[*Session]) {
				b.Description("Remove a friend.").
					Argument("username").
					Executes(doFriendRemove)
			})
	})
}

func doFriendsList(ctx *Ctx) {
	friends, err := ctx.Payload.Store().ListFriends(me(ctx).ID)
	if err != nil {
		fail(ctx, err, "")
		return
	}
	if len(friends) == 0 {
		ctx.Out.Println("No friends.")
		return
	}

	hub := ctx.Payload.Hub()
	for _, f := range friends {
		status := ""
		if hub.IsOnline(f.ID) {
			status = " (online)"
		}
		ctx.Out.Printf("%s @%s%s\n", f.DisplayName(), f.Username, status)
	}
}

func doFriendRequest(ctx *Ctx) {
	u := me(ctx)
	target, ok := lookupUser(ctx, ctx.String("username"))
	if !ok {
		return
	}
	if target.ID == u.ID {
		ctx.Out.Println("You can't befriend yourself.")
		return
	}

	err := ctx.Payload.Store().SendFriendRequest(u.ID, target.ID)
	if errors.Is(err, domain.ErrExists) {
		ctx.Out.Printf("You are already friends with %s or a request is pending.\n", target.Username)
		return
	}
	if err != nil {
		fail(ctx, err, "")
		return
	}

	ctx.Out.Printf("Friend request sent to %s.\n", target.Username)
	ctx.Payload.Hub().SendToUser(target.ID, fmt.Sprintf(
		"%s sent you a friend request. Use /friends accept %s", u.DisplayName(), u.Username))
}

func doFriendDismiss(ctx *Ctx) {
	target, ok := lookupUser(ctx, ctx.String("username"))
	if !ok {
		return
	}
	if err := ctx.Payload.Store().DismissFriendRequest(me(ctx).ID, target.ID); err != nil {
		fail(ctx, err, fmt.Sprintf("No pending request to %s.", target.Username))
		return
	}
	ctx.Out.Printf("Friend request to %s withdrawn.\n", target.Username)
}

// answerFriendRequest accepts or denies the request from the named user,
// or the oldest pending one.
func answerFriendRequest(ctx *Ctx, accept bool) {
	u := me(ctx)
	store := ctx.Payload.Store()

	var from domain.User
	if username, ok := ctx.Lookup("username"); ok {
		if from, ok = lookupUser(ctx, username); !ok {
			return
		}
	} else {
		pending, err := store.ListIncomingRequests(u.ID)
		if err != nil {
			fail(ctx, err, "")
			return
		}
		if len(pending) == 0 {
			ctx.Out.Println("No pending friend requests.")
			return
		}
		from = pending[0]
	}

	noRequest := fmt.Sprintf("No friend request from %s.", from.Username)
	if !accept {
		if err := store.DenyFriendRequest(u.ID, from.ID); err != nil {
			fail(ctx, err, noRequest)
			return
		}
		ctx.Out.Printf("Declined friend request from %s.\n", from.Username)
		return
	}

	if err := store.AcceptFriendRequest(u.ID, from.ID); err != nil {
		fail(ctx, err, noRequest)
		return
	}
	ctx.Out.Printf("You and %s are now friends.\n", from.DisplayName())
	ctx.Payload.Hub().SendToUser(from.ID, fmt.Sprintf("%s accepted your friend request.", u.DisplayName()))
}

func doFriendRemove(ctx *Ctx) {
	target, ok := lookupUser(ctx, ctx.String("username"))
	if !ok {
		return
	}
	if err := ctx.Payload.Store().RemoveFriend(me(ctx).ID, target.ID); err != nil {
		fail(ctx, err, fmt.Sprintf("%s is not your friend.", target.Username))
		return
	}
	ctx.Out.Printf("Removed %s from your friends.\n", target.Username)
}
