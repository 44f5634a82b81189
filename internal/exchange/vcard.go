package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/entity"
)

// DecodeStats counts what happened to each card of a stream.
type DecodeStats struct {
	Processed int
	Imported  int
	Skipped   int
}

// ContactDecoder turns vCard streams into contacts. Tags are coloured by
// the shared palette.
type ContactDecoder struct {
	Palette *entity.TagPalette
}

// Decode reads every card from r. Malformed cards and cards that do not
// make a valid contact are skipped with a warning so that one bad entry
// does not lose the rest of the file.
func (d *ContactDecoder) Decode(ctx context.Context, r io.Reader) ([]entity.Contact, DecodeStats, error) {
	dec := vcard.NewDecoder(r)
	var (
		stats    DecodeStats
		contacts []entity.Contact
		failures int
	)

	for {
		if ctx.Err() != nil {
			return nil, stats, ctx.Err()
		}

		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A broken stream fails on every call.
			if failures++; failures > config.MaxConsecutiveCardErrors {
				return nil, stats, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
			}
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompExchange,
				config.LogKeyError, err)
			stats.Skipped++
			continue
		}
		failures = 0
		stats.Processed++

		c, err := d.contactFromCard(card)
		if err != nil {
			slog.Warn(config.MsgSkippedContact,
				config.LogKeyComponent, config.CompExchange,
				config.LogKeyError, err)
			stats.Skipped++
			continue
		}
		contacts = append(contacts, c)
		stats.Imported++
	}
	return contacts, stats, nil
}

// contactFromCard maps the standard properties. Optional fields that fail
// validation are dropped; only the name and reachability are mandatory.
func (d *ContactDecoder) contactFromCard(card vcard.Card) (entity.Contact, error) {
	var f entity.ContactFields
	var err error

	// Name Strategy: FN (Formatted) > N (Structured) > Fallback
	name := config.FallbackName
	if fn := card.Value(vcard.FieldFormattedName); fn != "" {
		name = fn
	} else if n := card.Name(); n != nil {
		name = strings.TrimSpace(strings.Join([]string{n.GivenName, n.AdditionalName, n.FamilyName}, " "))
	}
	if f.Name, err = entity.NewName(name); err != nil {
		return entity.Contact{}, err
	}

	for _, v := range card.Values(vcard.FieldTelephone) {
		if p, err := entity.NewPhone(strings.TrimPrefix(v, "tel:")); err == nil {
			f.Phone = p
			break
		}
	}
	for _, v := range card.Values(vcard.FieldEmail) {
		if e, err := entity.NewEmail(v); err == nil {
			f.Email = e
			break
		}
	}
	if addrs := card.Addresses(); len(addrs) > 0 {
		if a, err := entity.NewAddress(formatAddress(addrs[0])); err == nil {
			f.Address = a
		}
	}
	if l, err := entity.NewLink(card.Value(vcard.FieldURL)); err == nil {
		f.Link = l
	}

	var labels []string
	for _, v := range card.Values(vcard.FieldCategories) {
		for _, label := range strings.Split(v, ",") {
			if label = strings.TrimSpace(label); entity.IsValidTagLabel(label) {
				labels = append(labels, label)
			}
		}
	}
	if f.Tags, err = d.Palette.Tags(labels); err != nil {
		return entity.Contact{}, err
	}

	return entity.NewContact(f)
}

func formatAddress(a *vcard.Address) string {
	var parts []string
	for _, p := range []string{a.PostOfficeBox, a.ExtendedAddress, a.StreetAddress, a.Locality, a.Region, a.PostalCode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// EncodeContacts writes contacts as a vCard 4.0 stream.
func EncodeContacts(w io.Writer, contacts []entity.Contact) error {
	enc := vcard.NewEncoder(w)
	for _, c := range contacts {
		card := make(vcard.Card)
		card.SetValue(vcard.FieldUID, c.ID().URN())
		card.SetValue(vcard.FieldFormattedName, c.Name().String())
		card.SetName(&vcard.Name{GivenName: c.Name().String()})
		if !c.Phone().IsZero() {
			card.AddValue(vcard.FieldTelephone, c.Phone().String())
		}
		if !c.Email().IsZero() {
			card.AddValue(vcard.FieldEmail, c.Email().String())
		}
		if !c.Address().IsZero() {
			card.AddAddress(&vcard.Address{StreetAddress: c.Address().String()})
		}
		if !c.Link().IsZero() {
			card.AddValue(vcard.FieldURL, c.Link().String())
		}
		for _, t := range c.Tags() {
			card.AddValue(vcard.FieldCategories, t.Label())
		}
		vcard.ToV4(card)

		if err := enc.Encode(card); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}
	return nil
}
