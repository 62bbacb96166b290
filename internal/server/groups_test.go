package server

import (
	"testing"

	"golang.org/x/time/rate"
)

// teamWith creates "team" owned by the first client and makes every other
// client a member with the group open.
func teamWith(t *testing.T, clients ...*testClient) {
	t.Helper()
	owner := clients[0]
	owner.do("/groups create team", "Created group team. Use /open team to start chatting.")
	owner.do("/open team", "Opened team.")

	for i, c := range clients[1:] {
		owner.do("/groups invite "+c.name, "Invited "+c.name+" to team.")
		c.expect(owner.name + " invited you to team. Use /groups accept team")
		c.do("/groups accept", "You joined team.")
		for _, open := range clients[:i+1] {
			open.expect(c.name + " joined the group.")
		}
		c.do("/open team", "Opened team.")
	}
}

func TestGroups_ChatFanOut(t *testing.T) {
	srv, store := newTestServer(t, testConfig())
	clients := loggedIn(t, srv, store, "alice", "bob", "carol")
	alice, bob, carol := clients[0], clients[1], clients[2]
	teamWith(t, alice, bob)

	alice.send("hi all")
	alice.expect(SelfMarker + "[alice] hi all")
	bob.expect("[alice] hi all")

	carol.do("hello", msgNoGroup)

	// History is replayed on open, the caller's own lines marked.
	again := connect(t, srv)
	again.login("bob")
	bob.send("hey")
	bob.expect(SelfMarker + "[bob] hey")
	alice.expect("[bob] hey")
	again.do("/open team", "Opened team.", "[alice] hi all", SelfMarker+"[bob] hey")
}

func TestGroups_ChatRequiresLogin(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())
	c := connect(t, srv)

	c.do("hello", msgNotLoggedIn)
}

func TestGroups_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = rate.Limit(0.001)
	cfg.RateBurst = 1
	srv, store := newTestServer(t, cfg)
	alice := loggedIn(t, srv, store, "alice")[0]
	teamWith(t, alice)

	alice.do("one", SelfMarker+"[alice] one")
	alice.do("two", msgTooFast)
}

func TestGroups_CreateAndList(t *testing.T) {
	srv, store := newTestServer(t, testConfig())
	alice := loggedIn(t, srv, store, "alice")[0]

	alice.do("/groups list", "You are not a member of any group.")
	alice.do(`/groups create team "The Team"`, "Created group The Team. Use /open team to start chatting.")
	alice.do("/groups create team", "Group name is already taken.")
	alice.do("/groups create x", "Group name must be 3-24 letters, digits or underscores.")
	alice.do("/groups list", "The Team (team), owner")
	alice.do("/groups list members", msgOpenGroupFirst)

	alice.do("/open team", "Opened The Team.")
	alice.do("/groups list members", "alice @alice, owner (online)")
}

func TestGroups_DeleteAsksForConfirmation(t *testing.T) {
	srv, store := newTestServer(t, testConfig())
	clients := loggedIn(t, srv, store, "alice", "bob")
	alice, bob := clients[0], clients[1]

	alice.do(`/groups create team "The Team"`, "Created group The Team. Use /open team to start chatting.")
	alice.do("/groups delete", msgOpenGroupFirst)
	alice.do("/open team", "Opened The Team.")
	alice.do("/groups invite bob", "Invited bob to The Team.")
	bob.expect("alice invited you to The Team. Use /groups accept team")
	bob.do("/groups accept team", "You joined The Team.")
	alice.expect("bob joined the group.")
	bob.do("/open team", "Opened The Team.")

	bob.do("/groups delete", msgOwnerOnly)
	bob.do("/confirm deletion team", msgOwnerOnly)

	alice.do("/groups delete", `/ask deletion team "The Team"`)
	alice.send("/confirm deletion team")
	alice.expect("Group The Team was deleted.")
	bob.expect("Group The Team was deleted.")

	alice.do("hello", msgNoGroup)
	bob.do("/open team", msgGroupNotFound)
}

func TestGroups_ExitAsksForConfirmation(t *testing.T) {
	srv, store := newTestServer(t, testConfig())
	clients := loggedIn(t, srv, store, "alice", "bob")
	alice, bob := clients[0], clients[1]
	teamWith(t, alice, bob)

	alice.do("/groups exit", msgChownFirst)
	bob.do("/groups exit", "/ask exit_group team team")
	bob.do("/confirm exit_group team", "You successfully left the group.")
	alice.expect("bob left the group.")

	bob.do("hello", msgNoGroup)
	bob.do("/open team", "You are not a member of that group.")
}

func TestGroups_KickAndRoles(t *testing.T) {
	srv, store := newTestServer(t, testConfig())
	clients := loggedIn(t, srv, store, "alice", "bob", "carol")
	alice, bob, carol := clients[0], clients[1], clients[2]
	teamWith(t, alice, bob, carol)

	bob.do("/groups kick carol", msgNoPermission)
	bob.do("/groups op carol", msgOwnerOnly)

	alice.do("/groups deop bob", "bob is not an admin.")
	alice.do("/groups op bob", "bob is now an admin.")
	bob.expect("You are now an admin of team.")
	alice.do("/groups op bob", "bob is not a member.")

	bob.do("/groups kick alice", "You can't kick alice.")
	bob.do("/groups kick bob", "Use /groups exit to leave the group.")
	bob.do("/groups kick carol", "Kicked carol from team.")
	carol.expect("You were kicked from team.")
	carol.do("hello", msgNoGroup)
	bob.do("/groups kick carol", "carol is not a member of this group.")

	alice.do("/groups chown alice", "You already own this group.")
	alice.do("/groups chown bob", "bob is now the owner of team.")
	bob.expect("You are now the owner of team.")
	alice.do("/groups exit", "/ask exit_group team team")
	bob.do("/groups exit", msgChownFirst)
}

func TestGroups_Rename(t *testing.T) {
	srv, store := newTestServer(t, testConfig())
	clients := loggedIn(t, srv, store, "alice", "bob")
	alice, bob := clients[0], clients[1]
	teamWith(t, alice, bob)

	bob.do(`/groups rename "New Name"`, msgNoPermission)
	alice.do(`/groups rename "New Name"`, "alice renamed the group to New Name.")
	bob.expect("alice renamed the group to New Name.")
	bob.do("/groups list", "New Name (team), member")
}

func TestGroups_InviteDeny(t *testing.T) {
	srv, store := newTestServer(t, testConfig())
	clients := loggedIn(t, srv, store, "alice", "bob")
	alice, bob := clients[0], clients[1]

	bob.do("/groups accept", "No pending invitations.")
	alice.do("/groups create team", "Created group team. Use /open team to start chatting.")
	alice.do("/groups invite bob", msgOpenGroupFirst)
	alice.do("/open team", "Opened team.")
	alice.do("/groups invite zed", msgUserNotFound)
	alice.do("/groups invite bob", "Invited bob to team.")
	bob.next()
	alice.do("/groups invite bob", "bob is already a member or invited.")

	bob.do("/groups deny", "Declined the invitation to team.")
	bob.do("/groups deny team", "No invitation to team.")
	bob.do("/groups accept nope", msgGroupNotFound)
}

func TestGroups_DoubleSlashIsChat(t *testing.T) {
	srv, store := newTestServer(t, testConfig())
	alice := loggedIn(t, srv, store, "alice")[0]
	teamWith(t, alice)

	alice.do("//shrug", SelfMarker+"[alice] //shrug")
}
