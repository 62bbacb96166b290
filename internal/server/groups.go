package server

import (
	"errors"
	"fmt"

	"github.com/fsbteam/chat/internal/command"
	"github.com/fsbteam/chat/internal/domain"
)

func registerGroups(p *command.Processor[*Session]) {
	p.MustRegister("groups", func(b *command.Builder[*Session]) {
		b.Description("Manage your groups.").
			RequireCondition(requireAuth).
			Subcommand("list", func(b *command.Builder[*Session]) {
				b.Description("List your groups.").
					Executes(doGroupsList).
					Subcommand("members", func(b *command.Builder[*Session]) {
						b.Description("List the members of the open group.").
							RequireCondition(requireGroup).
							Executes(doGroupMembers)
					})
			}).
			Subcommand("create", func(b *command.Builder[*Session]) {
				b.Description("Create a group.").
					Argument("groupname").
					OptionalArgument("name").
					Executes(doGroupCreate)
			}).
			Subcommand("delete", func(b *command.Builder[*Session]) {
				b.Description("Delete the open group.").
					RequireCondition(requireGroup).
					RequireCondition(requireOwner).
					Executes(func(ctx *Ctx) {
						g := openGroup(ctx)
						ctx.Out.Println(command.Line("ask", "deletion", g.Groupname, g.Title()))
					})
			}).
			Subcommand("invite", func(b *command.Builder[*Session]) {
				b.Description("Invite a user to the open group.").
					RequireCondition(requireGroup).
					RequireCondition(requireManager).
					Argument("username").
					Executes(doGroupInvite)
			}).
			Subcommand("accept", func(b *command.Builder[*Session]) {
				b.Description("Accept an invitation, the oldest one by default.").
					OptionalArgument("groupname").
					Executes(func(ctx *Ctx) { answerInvite(ctx, true) })
			}).
			Subcommand("deny", func(b *command.Builder[*Session]) {
				b.Description("Deny an invitation, the oldest one by default.").
					OptionalArgument("groupname").
					Executes(func(ctx *Ctx) { answerInvite(ctx, false) })
			}).
			Subcommand("kick", func(b *command.Builder[*Session]) {
				b.Description("Remove a member from the open group.").
					RequireCondition(requireGroup).
					RequireCondition(requireManager).
					Argument("username").
					Executes(doGroupKick)
			}).
			Subcommand("exit", func(b *command.Builder[*Session]) {
				b.Description("Leave the open group.").
					RequireCondition(requireGroup).
					RequireCondition(requireNotOwner).
					Executes(func(ctx *Ctx) {
						g := openGroup(ctx)
						ctx.Out.Println(command.Line("ask", "exit_group", g.Groupname, g.Title()))
					})
			}).
			Subcommand("op", func(b *command.Builder[*Session]) {
				b.Description("Make a member an admin.").
					RequireCondition(requireGroup).
					RequireCondition(requireOwner).
					Argument("username").
					Executes(func(ctx *Ctx) { changeRole(ctx, domain.RoleMember, domain.RoleAdmin) })
			}).
			Subcommand("deop", func(b *command.Builder[*Session]) {
				b.Description("Make an admin a regular member.").
					RequireCondition(requireGroup).
					RequireCondition(requireOwner).
					Argument("username").
					Executes(func(ctx *Ctx) { changeRole(ctx, domain.RoleAdmin, domain.RoleMember) })
			}).
			Subcommand("chown", func(b *command.Builder[*Session]) {
				b.Description("Hand the ownership of the open group to a member.").
					RequireCondition(requireGroup).
					RequireCondition(requireOwner).
					Argument("username").
					Executes(doGroupChown)
			}).
			Subcommand("rename", func(b *command.Builder[*Session]) {
				b.Description("Change the display name of the open group.").
					RequireCondition(requireGroup).
					RequireCondition(requireManager).
					Argument("name").
					Executes(doGroupRename)
			})
	})
}

// rank orders roles for kick permissions.
func rank(r domain.Role) int {
	switch r {
	case domain.RoleOwner:
		return 2
	case domain.RoleAdmin:
		return 1
	default:
		return 0
	}
}

func doGroupsList(ctx *Ctx) {
	u := me(ctx)
	store := ctx.Payload.Store()

	groups, err := store.ListUserGroups(u.ID)
	if err != nil {
		fail(ctx, err, "")
		return
	}
	if len(groups) == 0 {
		ctx.Out.Println("You are not a member of any group.")
		return
	}
	for _, g := range groups {
		role, err := store.Role(g.ID, u.ID)
		if err != nil {
			fail(ctx, err, "")
			return
		}
		ctx.Out.Printf("%s (%s), %s\n", g.Title(), g.Groupname, role)
	}
}

func doGroupMembers(ctx *Ctx) {
	members, err := ctx.Payload.Store().Members(openGroup(ctx).ID)
	if err != nil {
		fail(ctx, err, "")
		return
	}

	hub := ctx.Payload.Hub()
	for _, m := range members {
		status := ""
		if hub.IsOnline(m.ID) {
			status = " (online)"
		}
		ctx.Out.Printf("%s @%s, %s%s\n", m.DisplayName(), m.Username, m.Role, status)
	}
}

func doGroupCreate(ctx *Ctx) {
	groupname := ctx.String("groupname")
	if !validName(groupname) {
		ctx.Out.Println("Group name must be 3-24 letters, digits or underscores.")
		return
	}

	g, err := ctx.Payload.Store().CreateGroup(groupname, ctx.String("name"), me(ctx).ID)
	if errors.Is(err, domain.ErrExists) {
		ctx.Out.Println("Group name is already taken.")
		return
	}
	if err != nil {
		fail(ctx, err, "")
		return
	}

	ctx.Payload.log.Info("%s created group %s", me(ctx).Username, g.Groupname)
	ctx.Out.Printf("Created group %s. Use /open %s to start chatting.\n", g.Title(), g.Groupname)
}

func doGroupInvite(ctx *Ctx) {
	u, g := me(ctx), openGroup(ctx)
	target, ok := lookupUser(ctx, ctx.String("username"))
	if !ok {
		return
	}

	err := ctx.Payload.Store().Invite(g.ID, target.ID, u.ID)
	if errors.Is(err, domain.ErrExists) {
		ctx.Out.Printf("%s is already a member or invited.\n", target.Username)
		return
	}
	if err != nil {
		fail(ctx, err, "")
		return
	}

	ctx.Out.Printf("Invited %s to %s.\n", target.Username, g.Title())
	ctx.Payload.Hub().SendToUser(target.ID, fmt.Sprintf(
		"%s invited you to %s. Use /groups accept %s", u.DisplayName(), g.Title(), g.Groupname))
}

// answerInvite accepts or denies the invitation to the named group, or
// the oldest pending one.
func answerInvite(ctx *Ctx, accept bool) {
	u := me(ctx)
	store := ctx.Payload.Store()

	var g domain.Group
	if groupname, ok := ctx.Lookup("groupname"); ok {
		var err error
		if g, err = store.GroupByName(groupname); err != nil {
			fail(ctx, err, msgGroupNotFound)
			return
		}
	} else {
		invites, err := store.ListInvites(u.ID)
		if err != nil {
			fail(ctx, err, "")
			return
		}
		if len(invites) == 0 {
			ctx.Out.Println("No pending invitations.")
			return
		}
		g = invites[0].Group
	}

	noInvite := fmt.Sprintf("No invitation to %s.", g.Groupname)
	if !accept {
		if err := store.DenyInvite(u.ID, g.ID); err != nil {
			fail(ctx, err, noInvite)
			return
		}
		ctx.Out.Printf("Declined the invitation to %s.\n", g.Title())
		return
	}

	if err := store.AcceptInvite(u.ID, g.ID); err != nil {
		fail(ctx, err, noInvite)
		return
	}
	ctx.Out.Printf("You joined %s.\n", g.Title())
	ctx.Payload.Hub().SendToGroup(g.ID, func(*Session) string {
		return fmt.Sprintf("%s joined the group.", u.DisplayName())
	})
}

// groupMember resolves a username argument to a member of the open group.
func groupMember(ctx *Ctx) (domain.User, domain.Role, bool) {
	target, ok := lookupUser(ctx, ctx.String("username"))
	if !ok {
		return domain.User{}, "", false
	}
	role, err := ctx.Payload.Store().Role(openGroup(ctx).ID, target.ID)
	if err != nil {
		fail(ctx, err, fmt.Sprintf("%s is not a member of this group.", target.Username))
		return domain.User{}, "", false
	}
	return target, role, true
}

func doGroupKick(ctx *Ctx) {
	g := openGroup(ctx)
	target, role, ok := groupMember(ctx)
	if !ok {
		return
	}
	if target.ID == me(ctx).ID {
		ctx.Out.Println("Use /groups exit to leave the group.")
		return
	}
	if rank(role) >= rank(roleOf(ctx)) {
		ctx.Out.Printf("You can't kick %s.\n", target.Username)
		return
	}

	if err := ctx.Payload.Store().RemoveMember(g.ID, target.ID); err != nil {
		fail(ctx, err, "")
		return
	}

	notice := fmt.Sprintf("You were kicked from %s.", g.Title())
	ctx.Payload.Hub().ForUser(target.ID, func(s *Session) {
		if open, ok := s.Group(); ok && open.ID == g.ID {
			s.setGroup(nil)
		}
		s.Send(notice)
	})
	ctx.Out.Printf("Kicked %s from %s.\n", target.Username, g.Title())
}

// changeRole moves a member from one role to another.
func changeRole(ctx *Ctx, from, to domain.Role) {
	g := openGroup(ctx)
	target, role, ok := groupMember(ctx)
	if !ok {
		return
	}
	if role != from {
		ctx.Out.Printf("%s is not %s %s.\n", target.Username, article(from), from)
		return
	}

	if err := ctx.Payload.Store().SetRole(g.ID, target.ID, to); err != nil {
		fail(ctx, err, "")
		return
	}
	ctx.Out.Printf("%s is now %s %s.\n", target.Username, article(to), to)
	ctx.Payload.Hub().SendToUser(target.ID, fmt.Sprintf("You are now %s %s of %s.", article(to), to, g.Title()))
}

func article(r domain.Role) string {
	if r == domain.RoleAdmin || r == domain.RoleOwner {
		return "an"
	}
	return "a"
}

func doGroupChown(ctx *Ctx) {
	g := openGroup(ctx)
	target, _, ok := groupMember(ctx)
	if !ok {
		return
	}
	if target.ID == me(ctx).ID {
		ctx.Out.Println("You already own this group.")
		return
	}

	if err := ctx.Payload.Store().TransferOwnership(g.ID, target.ID); err != nil {
		fail(ctx, err, "")
		return
	}
	g.OwnerID = target.ID
	ctx.Payload.Hub().UpdateGroup(g, "")
	ctx.Payload.log.Info("%s handed %s to %s", me(ctx).Username, g.Groupname, target.Username)
	ctx.Out.Printf("%s is now the owner of %s.\n", target.Username, g.Title())
	ctx.Payload.Hub().SendToUser(target.ID, fmt.Sprintf("You are now the owner of %s.", g.Title()))
}

func doGroupRename(ctx *Ctx) {
	g := openGroup(ctx)
	name := ctx.String("name")
	if err := ctx.Payload.Store().RenameGroup(g.ID, name); err != nil {
		fail(ctx, err, "")
		return
	}
	g.Name = name
	ctx.Payload.Hub().UpdateGroup(g, fmt.Sprintf("%s renamed the group to %s.", me(ctx).DisplayName(), g.Title()))
}
