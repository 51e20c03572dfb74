package properties

import "github.com/toejough/eventmon"

// Account demonstrates the property notification convention: it has no exported events, only
// the PropertyNotifier capability, and is monitored under the PropertyChanged event.
type Account struct {
	Owner   string
	Balance int
	Frozen  bool

	changed eventmon.Event[eventmon.PropertyChangedHandler]
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount int) {
	if a.Frozen || amount == 0 {
		return
	}

	a.Balance += amount
	a.notify("Balance")
}

// Freeze stops further deposits.
func (a *Account) Freeze() {
	a.Frozen = true
	a.notify("Frozen")
}

// OnPropertyChanged implements eventmon.PropertyNotifier.
func (a *Account) OnPropertyChanged(handler eventmon.PropertyChangedHandler) func() {
	return a.changed.Subscribe(handler)
}

func (a *Account) notify(property string) {
	for _, handler := range a.changed.Handlers() {
		handler(a, eventmon.PropertyChangedArgs{PropertyName: property})
	}
}
