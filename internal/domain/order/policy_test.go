package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/sale"
	"storefront/internal/domain/user"
)

var (
	statusDefault  = Status{ID: 1, Title: StatusNew, Description: "new order"}
	statusWork     = Status{ID: 2, Title: StatusWork, Description: "in work"}
	statusClosed   = Status{ID: 4, Title: StatusClosed, Description: "closed"}
	statusDelivery = Status{ID: 3, Title: StatusDelivery, Description: "delivery"}
)

func managerUser(id int64) *user.User {
	return &user.User{ID: id, Name: "M", Role: user.Role{Title: user.RoleManager, Description: "Manager"}}
}

func workOrder(t *testing.T, manager *user.User) *Order {
	t.Helper()
	o := New(statusDefault, client(), []*sale.LineItem{sale.NewLineItem(prodA(), 1)}, now)
	o.Manager = manager
	return o
}

func updateWith(o *Order, s Status, m *user.User) Update {
	return Update{
		Number:          o.Number,
		Date:            now.Add(time.Hour),
		ShippingAddress: o.ShippingAddress,
		ShippingDetails: o.ShippingDetails,
		Description:     o.Description,
		Status:          s,
		ClientName:      o.Client.Name,
		ClientEmail:     o.Client.Email,
		ClientPhone:     o.Client.Phone,
		Manager:         m,
	}
}

func TestCanEdit(t *testing.T) {
	m1 := managerUser(1)
	o := workOrder(t, m1)

	assert.True(t, CanEdit(Actor{ID: 99, Role: user.RoleAdministrator}, o))
	assert.True(t, CanEdit(Actor{ID: 1, Role: user.RoleManager}, o))
	assert.False(t, CanEdit(Actor{ID: 2, Role: user.RoleManager}, o))
	assert.False(t, CanEdit(Actor{ID: 7, Role: user.RoleClient}, o))

	unassigned := workOrder(t, nil)
	assert.True(t, CanEdit(Actor{ID: 2, Role: user.RoleManager}, unassigned))
}

func TestManagerBindsSelfOnNonDefaultStatus(t *testing.T) {
	o := workOrder(t, nil)
	m1 := managerUser(1)

	applied := ApplyUpdate(Actor{ID: 1, Role: user.RoleManager}, o, updateWith(o, statusWork, m1))
	assert.True(t, applied)
	require.NotNil(t, o.Manager)
	assert.Equal(t, int64(1), o.Manager.ID)
	assert.Equal(t, statusWork, o.Status)
}

func TestManagerOwnershipGuardLeavesOrderUnchanged(t *testing.T) {
	m1 := managerUser(1)
	o := workOrder(t, m1)
	o.Status = statusWork
	o.SetShippingAddress("addr")
	before := *o
	beforePrice := o.Price()

	m2 := managerUser(2)
	applied := ApplyUpdate(Actor{ID: 2, Role: user.RoleManager}, o, updateWith(o, statusClosed, m2))

	assert.False(t, applied)
	assert.Equal(t, before.Number, o.Number)
	assert.Equal(t, before.Date, o.Date)
	assert.Equal(t, before.Status, o.Status)
	assert.Equal(t, before.ShippingAddress, o.ShippingAddress)
	assert.Equal(t, m1, o.Manager)
	assert.Equal(t, beforePrice, o.Price())
}

func TestDefaultStatusClearsManager(t *testing.T) {
	m1 := managerUser(1)
	o := workOrder(t, m1)
	o.Status = statusWork

	applied := ApplyUpdate(Actor{ID: 1, Role: user.RoleManager}, o, updateWith(o, statusDefault, m1))
	assert.True(t, applied)
	assert.Nil(t, o.Manager)
	assert.Equal(t, statusDefault, o.Status)
}

func TestAdminOverridesOwnership(t *testing.T) {
	m1 := managerUser(1)
	o := workOrder(t, m1)
	o.Status = statusWork
	m2 := managerUser(2)

	applied := ApplyUpdate(Actor{ID: 99, Role: user.RoleAdministrator}, o, updateWith(o, statusDelivery, m2))
	assert.True(t, applied)
	require.NotNil(t, o.Manager)
	assert.Equal(t, int64(2), o.Manager.ID)
	assert.Equal(t, statusDelivery, o.Status)
}

func TestAdminKeepsManagerOnDefaultStatus(t *testing.T) {
	// Clearing on NEW is a manager-path rule; admins apply the given binding
	// as-is.
	m1 := managerUser(1)
	o := workOrder(t, m1)

	applied := ApplyUpdate(Actor{ID: 99, Role: user.RoleAdministrator}, o, updateWith(o, statusDefault, m1))
	assert.True(t, applied)
	assert.Equal(t, m1, o.Manager)
}

func TestClientRoleNeverMutates(t *testing.T) {
	o := workOrder(t, nil)
	applied := ApplyUpdate(Actor{ID: 7, Role: user.RoleClient}, o, updateWith(o, statusWork, managerUser(7)))
	assert.False(t, applied)
	assert.Nil(t, o.Manager)
	assert.Equal(t, statusDefault, o.Status)
}

func TestUpdateReplacesClientContact(t *testing.T) {
	o := workOrder(t, nil)
	upd := updateWith(o, statusWork, managerUser(1))
	upd.ClientName, upd.ClientEmail, upd.ClientPhone = "New Name", "new@x", "555"

	require.True(t, ApplyUpdate(Actor{ID: 1, Role: user.RoleManager}, o, upd))
	assert.Equal(t, "New Name", o.Client.Name)
	assert.Equal(t, "new@x", o.Client.Email)
	assert.Equal(t, "555", o.Client.Phone)
}

// Full scenario: checkout-like order, M1 takes it, M2 bounces off.
func TestWorkflowScenario(t *testing.T) {
	a := sale.NewLineItem(prodA(), 1)
	b := sale.NewLineItem(prodB(), 3)
	o := New(statusDefault, client(), []*sale.LineItem{a, b}, now)

	assert.Equal(t, 25.0, o.Price())
	assert.Nil(t, o.Manager)
	assert.Equal(t, StatusNew, o.Status.Title)

	m1 := managerUser(1)
	require.True(t, ApplyUpdate(Actor{ID: 1, Role: user.RoleManager}, o, updateWith(o, statusWork, m1)))
	require.NotNil(t, o.Manager)
	assert.Equal(t, int64(1), o.Manager.ID)

	m2 := managerUser(2)
	assert.False(t, ApplyUpdate(Actor{ID: 2, Role: user.RoleManager}, o, updateWith(o, statusClosed, m2)))
	assert.Equal(t, StatusWork, o.Status.Title)
	assert.Equal(t, int64(1), o.Manager.ID)
}
