package dashboard

import (
	"github.com/mbenaiss/whatsapp-helpdesk/models"
)

// OpenAddDialog opens the add dialog for the kind listed on the current tab
func (s *State) OpenAddDialog() {
	s.Dialog = AddDialog{Open: true, Kind: models.KindForTab(s.Tab)}
}

// SetDialogInput stages the dialog fields
func (s *State) SetDialogInput(name, phone string) {
	if !s.Dialog.Open {
		return
	}
	s.Dialog.Name = name
	s.Dialog.Phone = phone
}

// ConfirmAdd adds the staged record and closes the dialog.
// With an empty name or phone nothing happens and the dialog stays open.
func (s *State) ConfirmAdd() (string, bool) {
	if !s.Dialog.Open {
		return "", false
	}

	id, ok := s.Add(s.Dialog.Kind, s.Dialog.Name, s.Dialog.Phone)
	if !ok {
		return "", false
	}

	s.Dialog = AddDialog{}
	return id, true
}

// CancelAdd closes the dialog and discards its input
func (s *State) CancelAdd() {
	s.Dialog = AddDialog{}
}

// Add appends a new record of kind with a fresh id and the inactive status of its kind
func (s *State) Add(kind models.Kind, name, phone string) (string, bool) {
	if name == "" || phone == "" {
		return "", false
	}

	id := s.nextID()
	switch kind {
	case models.KindInstance:
		s.Instances = append(s.Instances, models.Instance{
			ID:     id,
			Name:   name,
			Number: phone,
			Status: models.InstanceStatus(kind.InactiveStatus()),
		})
		return id, true
	case models.KindAttendant, models.KindClient, models.KindBot:
		c := models.Contact{
			ID:     id,
			Name:   name,
			Phone:  phone,
			Status: models.ContactStatus(kind.InactiveStatus()),
		}
		list := s.contactList(kind)
		*list = append(*list, c)
		return id, true
	}

	return "", false
}

// Delete removes the record with id from the kind's collection and reports whether
// anything was removed. Unknown ids leave the collection as it was.
func (s *State) Delete(kind models.Kind, id string) bool {
	if kind == models.KindInstance {
		kept := make([]models.Instance, 0, len(s.Instances))
		for _, in := range s.Instances {
			if in.ID != id {
				kept = append(kept, in)
			}
		}
		removed := len(kept) != len(s.Instances)
		s.Instances = kept
		return removed
	}

	list := s.contactList(kind)
	if list == nil {
		return false
	}

	kept := make([]models.Contact, 0, len(*list))
	for _, c := range *list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	removed := len(kept) != len(*list)
	*list = kept
	return removed
}

// Contacts returns the attendants, clients or bots collection
func (s *State) Contacts(kind models.Kind) []models.Contact {
	list := s.contactList(kind)
	if list == nil {
		return nil
	}
	return *list
}

// Count returns the number of records of kind
func (s *State) Count(kind models.Kind) int {
	if kind == models.KindInstance {
		return len(s.Instances)
	}
	return len(s.Contacts(kind))
}

// FindInstance returns the instance with id
func (s *State) FindInstance(id string) (models.Instance, bool) {
	for _, in := range s.Instances {
		if in.ID == id {
			return in, true
		}
	}
	return models.Instance{}, false
}

func (s *State) contactList(kind models.Kind) *[]models.Contact {
	switch kind {
	case models.KindAttendant:
		return &s.Attendants
	case models.KindClient:
		return &s.Clients
	case models.KindBot:
		return &s.Bots
	}
	return nil
}
