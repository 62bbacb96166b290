package server

import (
	"fmt"

	"github.com/fsbteam/chat/internal/command"
	"github.com/fsbteam/chat/internal/domain"
)

// registerControl declares the replies a client sends to /request and
// /ask lines. They are invisible, so a user typing them by hand gets
// COMMAND_NOT_FOUND unless the call is well formed.
func registerControl(p *command.Processor[*Session]) {
	p.MustRegister("response", func(b *command.Builder[*Session]) {
		b.Invisible().
			Subcommand("type", func(b *command.Builder[*Session]) {
				b.Argument("type").Executes(doResponseType)
			})
	})
	p.MustRegister("confirm", func(b *command.Builder[*Session]) {
		b.Invisible().
			RequireCondition(requireAuth).
			Subcommand("deletion", func(b *command.Builder[*Session]) {
				b.Argument("groupname").Executes(doConfirmDeletion)
			}).
			Subcommand("exit_group", func(b *command.Builder[*Session]) {
				b.Argument("groupname").Executes(doConfirmExit)
			})
	})
}

func doResponseType(ctx *Ctx) {
	switch t := ctx.String("type"); t {
	case ClientConsole, ClientGUI:
		ctx.Payload.setClientType(t)
		ctx.Payload.log.Debug("client type %s", t)
	default:
		ctx.Payload.log.Warn("unknown client type %q", t)
	}
}

// confirmedGroup resolves the groupname of a /confirm line and the
// caller's role in it.
func confirmedGroup(ctx *Ctx) (domain.Group, domain.Role, bool) {
	store := ctx.Payload.Store()
	g, err := store.GroupByName(ctx.String("groupname"))
	if err != nil {
		fail(ctx, err, msgGroupNotFound)
		return domain.Group{}, "", false
	}
	role, err := store.Role(g.ID, me(ctx).ID)
	if err != nil {
		fail(ctx, err, "You are not a member of that group.")
		return domain.Group{}, "", false
	}
	return g, role, true
}

func doConfirmDeletion(ctx *Ctx) {
	g, role, ok := confirmedGroup(ctx)
	if !ok {
		return
	}
	if role != domain.RoleOwner {
		ctx.Out.Println(msgOwnerOnly)
		return
	}

	if err := ctx.Payload.Store().DeleteGroup(g.ID); err != nil {
		fail(ctx, err, msgGroupNotFound)
		return
	}
	ctx.Payload.log.Info("%s deleted group %s", me(ctx).Username, g.Groupname)

	notice := fmt.Sprintf("Group %s was deleted.", g.Title())
	if open, ok := ctx.Payload.Group(); !ok || open.ID != g.ID {
		ctx.Out.Println(notice)
	}
	ctx.Payload.Hub().CloseGroup(g.ID, notice)
}

func doConfirmExit(ctx *Ctx) {
	u := me(ctx)
	g, role, ok := confirmedGroup(ctx)
	if !ok {
		return
	}
	if role == domain.RoleOwner {
		ctx.Out.Println(msgChownFirst)
		return
	}

	if err := ctx.Payload.Store().RemoveMember(g.ID, u.ID); err != nil {
		fail(ctx, err, "")
		return
	}
	ctx.Payload.Hub().ForUser(u.ID, func(s *Session) {
		if open, ok := s.Group(); ok && open.ID == g.ID {
			s.setGroup(nil)
		}
	})
	ctx.Out.Println("You successfully left the group.")
	ctx.Payload.Hub().SendToGroup(g.ID, func(*Session) string {
		return fmt.Sprintf("%s left the group.", u.DisplayName())
	})
}
