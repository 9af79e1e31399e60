// Package models defines the domain models for ProsperPath.
//
// # Shared expenses
//
// Shared-expense tracking revolves around an Event (a trip, a dinner club):
//   - Member: a person who pays or owes inside events, owned by a User
//   - Bill: one payment by one Member inside an Event
//   - BillParticipant: one Member's share of a Bill
//   - EventBalance: derived paid/should-pay/balance snapshot per Member per Event
//   - Settlement: a recorded payment from one Member to another
//
// # Personal finance
//
// Each of these belongs to exactly one User:
//   - Category, Budget, Transaction, Notification
//
// # Design Principles
//
// 1. **Plain data**: models are flat structs; relationships are ID strings, never pointers
// 2. **Exact money**: every amount is a decimal.Decimal with a 2-place currency scale
// 3. **Derived state is disposable**: EventBalance rows are always rebuilt, never edited
package models
