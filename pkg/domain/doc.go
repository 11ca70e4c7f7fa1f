/*
Package domain contains the core domain models for the inquest engine.

It defines the fundamental entities of a prompting session, such as Questions,
Answers and dependency Conditions. This package is kept pure and free of
external dependencies like I/O or terminal handling, following Hexagonal
Architecture principles.

# Key Entities

  - Question: One unit of user prompting with its validation/default/dependency configuration.
  - Answer: The typed result of one question (boolean, number, string or empty).
  - Answers: The insertion-ordered mapping of question key to Answer for a session.
  - Condition: A rule over previously given answers gating whether a question is asked.
*/
package domain
