// Package domain holds the types shared by every campus entity: sentinel
// errors, field validation and the Action contract used for staged writes.
// Entities live in sub-packages (domain/project, domain/account,
// domain/university).
package domain
