package models

// AccountStatus is the generic active/inactive flag shared by owners and stations.
type AccountStatus string

const (
	StatusActive   AccountStatus = "Active"
	StatusInactive AccountStatus = "Inactive"
)

// EVOwner is a customer record. The NIC is the document key and never changes
// after creation; uniqueness rides on the collection's _id constraint.
type EVOwner struct {
	NIC            string        `bson:"_id" json:"nic"`
	Name           string        `bson:"name" json:"name"`
	Email          string        `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string        `bson:"phone,omitempty" json:"phone,omitempty"`
	VehicleDetails string        `bson:"vehicleDetails,omitempty" json:"vehicleDetails,omitempty"`
	Status         AccountStatus `bson:"status" json:"status"`
	Version        int64         `bson:"version" json:"-"`
}
